package paths

import (
	"os"
	"path/filepath"
)

const (
	// ResDir is the Android resource root, relative to the project root.
	ResDir        = "app/src/main/res"
	MipmapPrefix  = "mipmap-"
	TempSVGPrefix = "ic_launcher_"
	DirPerm       = 0755
	FilePerm      = 0644
)

// MipmapDir returns the density-named directory under root.
func MipmapDir(root, density string) string {
	return filepath.Join(root, MipmapPrefix+density)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
