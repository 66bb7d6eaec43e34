package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/hwprofile/internal/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "hwprofile"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ProfileExtensions lists the file extensions accepted for host profiles,
// in lookup order.
var ProfileExtensions = []string{".yaml", ".yml", ".toml"}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/hwprofile.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ProfileDir returns <DataHome>/hwprofile/profiles.
func ProfileDir() string {
	return filepath.Join(xdg.DataHome, AppName, "profiles")
}

// ResolveProfile maps a profile reference to a file path.
// A reference containing a path separator or an extension is used as-is;
// a bare name is searched for in ProfileDir. Returns ErrNotFound when a bare
// name matches no file.
func ResolveProfile(ref string) (string, error) {
	if ref == "" {
		return "", errors.Wrap(errors.ErrNotFound, "empty profile reference")
	}
	if filepath.Base(ref) != ref || filepath.Ext(ref) != "" {
		return ref, nil
	}

	for _, ext := range ProfileExtensions {
		candidate := filepath.Join(ProfileDir(), ref+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Wrapf(errors.ErrNotFound, "profile %q in %s", ref, ProfileDir())
}
