package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/hwprofile/internal/errors"
)

// MaxProfileSize bounds host profile and config reads. Real profiles are
// a few hundred bytes.
const MaxProfileSize int64 = 256 << 10

// ErrFileTooLarge is returned when a file exceeds the read limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadFileLimited reads at most limit bytes of path. Open failures keep
// their fs error in the chain so callers can test for fs.ErrNotExist.
func ReadFileLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	switch {
	case err != nil:
		return nil, errors.Wrapf(err, "reading %s", path)
	case int64(len(data)) > limit:
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", path, limit)
	}
	return data, nil
}
