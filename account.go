package box

import (
	"context"
	"errors"

	"github.com/ionutliviu/box-go-sdk/utils"
)

// Account is the entry point to the remote service. It caches the
// authenticated user's attributes and hands out item handles bound to its
// transport.
type Account struct {
	transport Transport
	info      Attrs
	root      *Folder
}

// NewAccount returns an account speaking through transport.
func NewAccount(transport Transport) *Account {
	return &Account{transport: transport}
}

// Info returns the account attributes, fetching them on first use. A
// rejected or invalid credential resolves to (nil, nil) rather than an
// error, so callers can probe authorization without special casing.
func (a *Account) Info(ctx context.Context) (Attrs, error) {
	if a.info != nil {
		return a.info, nil
	}
	return a.Refresh(ctx)
}

// Refresh drops the cached account attributes and fetches them again. When
// the fetch fails the cache stays empty, so the account reads as
// unauthorized afterwards.
func (a *Account) Refresh(ctx context.Context) (Attrs, error) {
	a.info = nil
	if a.transport == nil {
		return nil, errTransportRequired
	}
	info, err := a.transport.AccountInfo(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthorized) || errors.Is(err, ErrInvalidInput) {
			return nil, nil
		}
		return nil, utils.WrapInfoError(err)
	}
	a.info = info
	return a.info, nil
}

// Authorized reports whether account attributes are currently cached.
func (a *Account) Authorized() bool {
	return a.info != nil
}

// Authorize installs token on the transport, probes it with a fresh account
// fetch, and reports whether the account ends up authorized. An empty token
// just reports the current state.
func (a *Account) Authorize(ctx context.Context, token string) bool {
	if token != "" && a.transport != nil {
		a.transport.SetAuthToken(token)
		_, _ = a.Refresh(ctx)
	}
	return a.Authorized()
}

// Root returns the account's root folder. The handle is built once and
// reused across calls.
func (a *Account) Root() *Folder {
	if a.root == nil {
		a.root = a.Folder(rootFolderID)
	}
	return a.root
}

// Folder returns a detached folder handle for id. Only the identity is
// known until the first metadata fetch, and the handle never learns a
// parent reference.
func (a *Account) Folder(id string) *Folder {
	return newFolder(a, Attrs{attrID: id})
}

// File returns a detached file handle for id.
func (a *Account) File(id string) *File {
	return newFile(a, Attrs{attrID: id})
}

// Item returns a detached generic item handle for id. It has no metadata
// operation of its own, so only cached attributes are readable.
func (a *Account) Item(id string) *BasicItem {
	return newBasicItem(a, Attrs{attrID: id})
}
