package ports

import "go.trai.ch/vtrg/internal/core/domain"

// ProjectLoader locates the Vantor checkout the tool operates on.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectLoader interface {
	Load(cwd string) (domain.Layout, error)
}
