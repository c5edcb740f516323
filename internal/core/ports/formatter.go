package ports

import (
	"context"

	"go.trai.ch/vtrg/internal/core/domain"
)

// Formatter formats source files with an external tool.
//
//go:generate mockgen -source=formatter.go -destination=mocks/mock_formatter.go -package=mocks
type Formatter interface {
	Format(ctx context.Context, req domain.FormatRequest) (domain.FormatReport, error)
}
