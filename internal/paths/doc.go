// Package paths resolves hwprofile's configuration and profile locations.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// On Linux, paths follow XDG conventions (~/.config, ~/.local/share); on
// macOS and Windows the platform equivalents are used.
//
//	paths.ConfigFile()  // ~/.config/hwprofile/config.yaml
//	paths.ProfileDir()  // ~/.local/share/hwprofile/profiles
//
// Host profiles may be referenced by bare name; [ResolveProfile] looks them
// up in [ProfileDir] with a .yaml, .yml or .toml extension.
package paths
