package domain

import "go.trai.ch/zerr"

// Platform identifies an operating system a build can target or run on.
type Platform string

const (
	// Windows is the Microsoft Windows desktop platform.
	Windows Platform = "Windows"
	// Linux is the Linux desktop platform.
	Linux Platform = "Linux"
	// Switch is the Nintendo Switch console platform.
	Switch Platform = "Switch"
)

// Platforms returns every supported platform in display order.
func Platforms() []Platform {
	return []Platform{Windows, Linux, Switch}
}

// ParsePlatform validates name against the supported platforms.
// Matching is exact: "linux" is rejected.
func ParsePlatform(name string) (Platform, error) {
	for _, p := range Platforms() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", zerr.With(Fail(ErrUnsupportedPlatform, nil), "platform", name)
}

// String returns the platform name.
func (p Platform) String() string {
	return string(p)
}

// ExecutableSuffix returns the file suffix of binaries produced for the platform.
func (p Platform) ExecutableSuffix() string {
	switch p {
	case Windows:
		return ".exe"
	case Switch:
		return ".nro"
	default:
		return ""
	}
}
