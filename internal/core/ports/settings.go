package ports

// SettingsStore holds the per-user settings document.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsStore interface {
	// Get returns the value at a dot-separated key such as "build.parallel_jobs".
	Get(key string) (any, error)

	// Set stores value at key and persists the document.
	Set(key string, value any) error

	// Reset replaces the document with the defaults and persists it.
	Reset() error

	// All returns the merged document.
	All() map[string]any

	// Path returns the location of the settings file.
	Path() string
}
