package box

import (
	"context"
	"io"

	"github.com/ionutliviu/box-go-sdk/utils"
)

// File is a remote file.
type File struct {
	itemCore
}

func init() {
	registerItemType(TypeFile, func(account *Account, attrs Attrs) Item {
		return newFile(account, attrs)
	})
}

func newFile(account *Account, attrs Attrs) *File {
	f := &File{itemCore: newItemCore(account, TypeFile, attrs)}
	f.fetch = f.remoteInfo
	return f
}

// Download streams the file content from the remote. The caller owns the
// returned reader and must close it.
func (f *File) Download(ctx context.Context) (io.ReadCloser, error) {
	t, err := f.transport()
	if err != nil {
		return nil, err
	}
	rc, err := t.DownloadFile(ctx, f.id)
	if err != nil {
		return nil, utils.WrapDownloadError(err)
	}
	return rc, nil
}

// Versions returns the historical versions cached on the file. The versions
// attribute arrives embedded in file metadata, so a fetch happens at most
// once.
func (f *File) Versions(ctx context.Context) ([]*Version, error) {
	v, err := f.Get(ctx, attrVersions)
	if err != nil {
		return nil, err
	}
	entries, ok := asSlice(v)
	if !ok {
		return nil, nil
	}
	versions := make([]*Version, 0, len(entries))
	for _, e := range entries {
		if version, ok := e.(*Version); ok {
			versions = append(versions, version)
		}
	}
	return versions, nil
}
