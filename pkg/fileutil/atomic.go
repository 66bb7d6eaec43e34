// Package fileutil provides bounded reads and atomic writes for profile files.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/hwprofile/internal/errors"
)

// AtomicWriteFile replaces path with data via a temp file in the same
// directory, so readers see either the old or the new content. The parent
// directory must exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hwprofile-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	steps := []struct {
		what string
		do   func() error
	}{
		{"writing", func() error { _, werr := tmp.Write(data); return werr }},
		{"setting permissions on", func() error { return tmp.Chmod(perm) }},
		{"syncing", tmp.Sync},
	}
	for _, s := range steps {
		if err = s.do(); err != nil {
			return errors.Wrapf(err, "%s temp file", s.what)
		}
	}

	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}
