package domain

// FormatRequest selects the sources handed to the external formatter.
type FormatRequest struct {
	Root string
	// Check reports unformatted files without rewriting them.
	Check      bool
	Extensions []string
	// Exclude holds doublestar patterns relative to Root.
	Exclude []string
}

// FormatReport summarizes a formatter run.
type FormatReport struct {
	Files []string
	// Unformatted lists files that differ from the formatter output (check mode only).
	Unformatted []string
}
