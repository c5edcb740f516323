package ports

import "go.trai.ch/vtrg/internal/core/domain"

// PlatformResolver maps the host and requested platform names to domain.Platform values.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformResolver interface {
	// DetectHost returns the platform the tool is running on.
	DetectHost() (domain.Platform, error)

	// Resolve validates requested, falling back to the host platform when it is empty.
	Resolve(requested string) (domain.Platform, error)
}
