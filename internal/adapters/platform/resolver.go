// Package platform maps operating systems onto build platforms.
package platform

import (
	"runtime"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// hostPlatforms maps GOOS values onto supported host platforms.
var hostPlatforms = map[string]domain.Platform{
	"linux":   domain.Linux,
	"windows": domain.Windows,
}

// Resolver implements ports.PlatformResolver.
type Resolver struct {
	goos string
}

// NewResolver creates a Resolver for the running operating system.
func NewResolver() *Resolver {
	return NewResolverFor(runtime.GOOS)
}

// NewResolverFor creates a Resolver that treats goos as the host operating system.
func NewResolverFor(goos string) *Resolver {
	return &Resolver{goos: goos}
}

// DetectHost returns the host platform.
func (r *Resolver) DetectHost() (domain.Platform, error) {
	p, ok := hostPlatforms[r.goos]
	if !ok {
		return "", zerr.With(domain.Fail(domain.ErrUnsupportedHost, nil), "os", r.goos)
	}
	return p, nil
}

// Resolve validates requested, or detects the host when it is empty.
func (r *Resolver) Resolve(requested string) (domain.Platform, error) {
	if requested == "" {
		return r.DetectHost()
	}
	return domain.ParsePlatform(requested)
}
