// Package safe provides guarded file reads for user-supplied paths.
package safe

import (
	"fmt"
	"os"
)

// ReadFile reads a regular file of at most maxSize bytes. Symlinks are
// rejected so a crafted definition path cannot pull in unrelated files,
// and the size cap guards against reading a device node or a runaway
// file into memory.
func ReadFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("refusing to read symlink %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("refusing to read non-regular file %s", path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("file %s exceeds size limit (%d > %d bytes)", path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
