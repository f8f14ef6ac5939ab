package box

import (
	"context"
	"errors"
	"io"
)

// Transport is the narrow surface the object model needs from a remote
// client. It limits the API surface and enables efficient mocking in tests.
//
// Implementations classify remote failures with the package sentinels so
// errors.Is works across wrapping layers: ErrNameTaken for name collisions,
// ErrNotAuthorized for credential failures, ErrInvalidInput for rejected
// parameters, and ErrNotFound for missing items.
type Transport interface {
	// AccountInfo returns the authenticated user's attributes.
	AccountInfo(ctx context.Context) (Attrs, error)
	// ItemInfo returns the metadata of a single item.
	ItemInfo(ctx context.Context, typ ItemType, id string) (Attrs, error)
	// FolderInfo returns folder metadata with one page of its item
	// collection, selected by limit and offset.
	FolderInfo(ctx context.Context, id string, limit, offset int) (Attrs, error)
	// CreateFolder creates a folder named name under parentID.
	CreateFolder(ctx context.Context, parentID, name string) (Attrs, error)
	// UpdateItem applies fields to an item and returns the updated
	// attributes. A parent field may hold an Item or a plain id string.
	UpdateItem(ctx context.Context, typ ItemType, id string, fields Attrs) (Attrs, error)
	// DeleteItem removes an item, recursively when asked.
	DeleteItem(ctx context.Context, typ ItemType, id string, recursive bool) error
	// UploadFile stores content as a new file named name under parentID.
	UploadFile(ctx context.Context, parentID, name string, content io.Reader) (Attrs, error)
	// DownloadFile streams a file's content.
	DownloadFile(ctx context.Context, id string) (io.ReadCloser, error)
	// CreateDiscussion starts a discussion named name on a folder.
	CreateDiscussion(ctx context.Context, folderID, name string) (Attrs, error)
	// Discussions lists the discussions attached to a folder.
	Discussions(ctx context.Context, folderID string) ([]Attrs, error)
	// ShareItem publishes sharing parameters for an item.
	ShareItem(ctx context.Context, typ ItemType, id string, params Attrs) (Attrs, error)
	// ShareInfo returns an item's sharing attributes.
	ShareInfo(ctx context.Context, typ ItemType, id string) (Attrs, error)
	// SetAuthToken installs a fresh access token for subsequent calls.
	SetAuthToken(token string)
}

var errTransportRequired = errors.New("non-nil box.Account with a transport is required")
