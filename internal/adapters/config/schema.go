package config

// ManifestVersion is the only manifest version this tool reads.
// A manifest without a version is treated as this version.
const ManifestVersion = "1"

// Manifest represents the structure of the vtrg.yaml project file.
// Empty fields keep the default layout.
type Manifest struct {
	Version    string   `yaml:"version"`
	Engine     string   `yaml:"engine"`
	Build      string   `yaml:"build"`
	Samples    string   `yaml:"samples"`
	Sandbox    string   `yaml:"sandbox"`
	Toolchains string   `yaml:"toolchains"`
	Resources  []string `yaml:"resources"`
}
