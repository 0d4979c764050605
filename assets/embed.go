package assets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed cat cop drone ground
var assetsFS embed.FS

// DiskDir is checked before the embedded frames. A directory there replaces the embedded
// directory with the same name.
var DiskDir = "assets"

// FS returns the frame filesystem: disk first, then the embedded copy.
func FS() fs.FS {
	return overlayFS{disk: os.DirFS(DiskDir), embedded: assetsFS}
}

type overlayFS struct {
	disk     fs.FS
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.disk.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.embedded.Open(name)
}
