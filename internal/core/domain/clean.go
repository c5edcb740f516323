package domain

// CleanScope selects which build state a scoped clean removes.
type CleanScope struct {
	Build bool
	Cache bool
}

// CleanAll returns the scope removing both build directories and cache artifacts.
func CleanAll() CleanScope {
	return CleanScope{Build: true, Cache: true}
}

// CleanRequest describes one directory to clean.
type CleanRequest struct {
	Path   string
	DryRun bool
	// Known marks a path taken from the layout's build directories or cache
	// artifacts. Any other directory must hold one of BuildMarkers.
	Known bool
	// Protected lists directories that survive the clean. A path equal to one
	// of them or above one of them is refused.
	Protected []string
}

// BuildMarkers are the files that identify a configured build directory.
var BuildMarkers = []string{"CMakeCache.txt", MakefileName}

// CleanReport lists what a clean removed, or would remove on a dry run.
type CleanReport struct {
	DryRun  bool
	Removed []string
	// Commands lists the build driver invocations that ran (or would run).
	Commands []string
}

// CacheArtifactPatterns are the doublestar patterns, relative to a build
// directory, that identify generator caches.
var CacheArtifactPatterns = []string{
	"**/CMakeCache.txt",
	"**/CMakeFiles",
}
