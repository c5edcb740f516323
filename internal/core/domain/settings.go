package domain

// Setting keys read by the application.
const (
	SettingDefaultPlatform  = "build.default_platform"
	SettingDefaultBuildType = "build.default_build_type"
	SettingParallelJobs     = "build.parallel_jobs"
	SettingShowBuildOutput  = "build.show_build_output"
	SettingFormatExtensions = "format.extensions"
	SettingFormatExclude    = "format.exclude_patterns"
	SettingColorOutput      = "general.color_output"
)

// DefaultSettings returns a fresh copy of the built-in settings document.
// An empty default platform means the host platform.
func DefaultSettings() map[string]any {
	return map[string]any{
		"build": map[string]any{
			"default_platform":   "",
			"default_build_type": string(Release),
			"parallel_jobs":      "auto",
			"show_build_output":  false,
		},
		"format": map[string]any{
			"extensions":       []any{"cpp", "hpp", "c", "h"},
			"exclude_patterns": []any{"External/**", "Build/**"},
		},
		"general": map[string]any{
			"color_output": true,
		},
	}
}
