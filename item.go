package box

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ionutliviu/box-go-sdk/utils"
)

// Item is the interface shared by every remote entity. The concrete set is
// closed: File, Folder, Comment, Discussion, Version, and BasicItem for
// payloads without a recognized discriminator.
//
// Attribute reads are lazy. A miss on the local cache triggers a single
// metadata fetch; a key still absent afterwards reports ErrUnknownAttribute.
type Item interface {
	// ID returns the immutable remote identifier.
	ID() string
	// Type returns the discriminator tag of the concrete entity.
	Type() ItemType
	// Equal reports whether other refers to the same remote entity, judged
	// by type tag and identifier. Cached attributes do not participate.
	Equal(other Item) bool

	// Get returns the attribute named key, fetching metadata once when the
	// key is not cached yet.
	Get(ctx context.Context, key string) (any, error)
	// Info ensures the attribute cache has been populated. It is a no-op
	// once a fetch has happened.
	Info(ctx context.Context) error
	// Refresh fetches metadata again. Cached attributes survive until the
	// fresh payload overwrites them key by key.
	Refresh(ctx context.Context) error

	Name(ctx context.Context) (string, error)
	Description(ctx context.Context) (string, error)
	Size(ctx context.Context) (int64, error)
	Etag(ctx context.Context) (string, error)
	CreatedAt(ctx context.Context) (time.Time, error)
	ModifiedAt(ctx context.Context) (time.Time, error)

	// Parent returns the containing folder, or nil when the remote reports
	// none. Handles built by the account factories never learn a parent.
	Parent(ctx context.Context) (*Folder, error)

	// Rename changes the item's name in place.
	Rename(ctx context.Context, name string) error
	// ChangeParent moves the item into the folder identified by
	// newParentID. With force set, an ErrNameTaken answer is retried once
	// under a timestamp-disambiguated name.
	ChangeParent(ctx context.Context, newParentID string, force bool) (MoveOutcome, error)
	// Delete removes the item from the remote.
	Delete(ctx context.Context) error

	// Share publishes a shared link built from params and returns the
	// updated attributes.
	Share(ctx context.Context, params Attrs) (Attrs, error)
	// ShareInfo fetches the item's current sharing attributes.
	ShareInfo(ctx context.Context) (Attrs, error)

	isItem()
}

// MoveOutcome reports how a ChangeParent call concluded. Its value is only
// meaningful when the returned error is nil.
type MoveOutcome int

const (
	// Moved - the item moved under its original name
	Moved MoveOutcome = iota
	// MovedWithRename - the name was taken and the item moved under a
	// timestamp-disambiguated name instead
	MovedWithRename
)

// fetchFunc retrieves the raw metadata payload for an item. A nil fetchFunc
// marks an entity with no metadata operation of its own.
type fetchFunc func(ctx context.Context) (Attrs, error)

// itemCore carries the state shared by the concrete entities and implements
// the attribute cache protocol. Entities embed it and bind their own fetch
// behavior at construction. The id is fixed at construction and never
// changes, no matter what later payloads claim.
type itemCore struct {
	account *Account
	id      string
	typ     ItemType
	attrs   Attrs
	cached  bool
	fetch   fetchFunc
}

func newItemCore(account *Account, typ ItemType, attrs Attrs) itemCore {
	if attrs == nil {
		attrs = Attrs{}
	}
	id, ok := idString(attrs[attrID])
	if !ok {
		id, _ = idString(attrs[attrFolderID])
	}
	return itemCore{account: account, id: id, typ: typ, attrs: attrs}
}

func (c *itemCore) ID() string     { return c.id }
func (c *itemCore) Type() ItemType { return c.typ }
func (c *itemCore) isItem()        {}

func (c *itemCore) Equal(other Item) bool {
	if other == nil {
		return false
	}
	return c.typ == other.Type() && c.id == other.ID()
}

func (c *itemCore) transport() (Transport, error) {
	if c.account == nil || c.account.transport == nil {
		return nil, errTransportRequired
	}
	return c.account.transport, nil
}

// remoteInfo is the fetch behavior shared by entities backed by the generic
// metadata operation.
func (c *itemCore) remoteInfo(ctx context.Context) (Attrs, error) {
	t, err := c.transport()
	if err != nil {
		return nil, err
	}
	return t.ItemInfo(ctx, c.typ, c.id)
}

func (c *itemCore) merge(in Attrs) {
	if c.attrs == nil {
		c.attrs = Attrs{}
	}
	c.attrs.merge(in)
}

// Info populates the attribute cache on first use. The fetched payload is
// normalized and merged over whatever is cached already; existing keys are
// only ever overwritten, never dropped. The cache is marked populated even
// when the fetch fails, so a plain attribute read never fetches twice.
func (c *itemCore) Info(ctx context.Context) error {
	if c.cached {
		return nil
	}
	c.cached = true
	if c.fetch == nil {
		return nil
	}
	raw, err := c.fetch(ctx)
	if err != nil {
		return utils.WrapInfoError(err)
	}
	c.merge(normalizeAttrs(c.account, raw))
	return nil
}

// Refresh fetches metadata again regardless of cache state.
func (c *itemCore) Refresh(ctx context.Context) error {
	c.cached = false
	return c.Info(ctx)
}

// Get returns the cached value for key, fetching metadata once when the key
// is absent. A key still missing after the fetch reports ErrUnknownAttribute.
func (c *itemCore) Get(ctx context.Context, key string) (any, error) {
	if v, ok := c.attrs[key]; ok {
		return v, nil
	}
	if err := c.Info(ctx); err != nil {
		return nil, err
	}
	if v, ok := c.attrs[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%s attribute %q: %w", c.typ, key, ErrUnknownAttribute)
}

func (c *itemCore) stringAttr(ctx context.Context, key string) (string, error) {
	v, err := c.Get(ctx, key)
	if err != nil {
		return "", err
	}
	s, ok := stringValue(v)
	if !ok {
		return "", fmt.Errorf("%s attribute %q is %T, not a string", c.typ, key, v)
	}
	return s, nil
}

func (c *itemCore) timeAttr(ctx context.Context, key string) (time.Time, error) {
	s, err := c.stringAttr(ctx, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s attribute %q: %w", c.typ, key, err)
	}
	return t, nil
}

// Name returns the item's display name.
func (c *itemCore) Name(ctx context.Context) (string, error) {
	return c.stringAttr(ctx, attrName)
}

// Description returns the item's description.
func (c *itemCore) Description(ctx context.Context) (string, error) {
	return c.stringAttr(ctx, attrDescription)
}

// Etag returns the item's entity tag.
func (c *itemCore) Etag(ctx context.Context) (string, error) {
	return c.stringAttr(ctx, attrEtag)
}

// Size returns the item's size in bytes.
func (c *itemCore) Size(ctx context.Context) (int64, error) {
	v, err := c.Get(ctx, attrSize)
	if err != nil {
		return 0, err
	}
	f, ok := floatValue(v)
	if !ok {
		return 0, fmt.Errorf("%s attribute %q is %T, not a number", c.typ, attrSize, v)
	}
	return int64(f), nil
}

// CreatedAt returns the item's creation time.
func (c *itemCore) CreatedAt(ctx context.Context) (time.Time, error) {
	return c.timeAttr(ctx, attrCreatedAt)
}

// ModifiedAt returns the item's last modification time.
func (c *itemCore) ModifiedAt(ctx context.Context) (time.Time, error) {
	return c.timeAttr(ctx, attrModifiedAt)
}

// Parent returns the containing folder. An attribute that is still absent
// after a fetch, or an explicit null, both resolve to (nil, nil).
func (c *itemCore) Parent(ctx context.Context) (*Folder, error) {
	v, err := c.Get(ctx, attrParent)
	if err != nil {
		if errors.Is(err, ErrUnknownAttribute) {
			return nil, nil
		}
		return nil, err
	}
	switch p := v.(type) {
	case nil:
		return nil, nil
	case *Folder:
		return p, nil
	}
	if m, ok := asAttrs(v); ok {
		return newFolder(c.account, m), nil
	}
	return nil, fmt.Errorf("%s parent is %T, not a folder", c.typ, v)
}

// Rename changes the item's name in place and merges the updated attributes
// into the cache.
func (c *itemCore) Rename(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("non-empty string for name is required")
	}
	t, err := c.transport()
	if err != nil {
		return err
	}
	updated, err := t.UpdateItem(ctx, c.typ, c.id, Attrs{attrName: name})
	if err != nil {
		return utils.WrapUpdateError(err)
	}
	c.merge(normalizeAttrs(c.account, updated))
	return nil
}

// ChangeParent moves the item under the folder identified by newParentID.
// When the target already holds the item's name and force is set, the move
// is retried once under a timestamp-disambiguated name; without force the
// ErrNameTaken answer surfaces to the caller.
func (c *itemCore) ChangeParent(ctx context.Context, newParentID string, force bool) (MoveOutcome, error) {
	if newParentID == "" {
		return Moved, fmt.Errorf("non-empty string for newParentID is required")
	}
	t, err := c.transport()
	if err != nil {
		return Moved, err
	}
	parent := newBasicItem(c.account, Attrs{attrID: newParentID})
	updated, err := t.UpdateItem(ctx, c.typ, c.id, Attrs{attrParent: parent})
	if err == nil {
		c.merge(normalizeAttrs(c.account, updated))
		return Moved, nil
	}
	if !force || !errors.Is(err, ErrNameTaken) {
		return Moved, utils.WrapMoveError(err)
	}
	name, nameErr := c.Name(ctx)
	if nameErr != nil {
		return Moved, utils.WrapMoveError(nameErr)
	}
	fresh := utils.DisambiguateName(name, c.typ == TypeFile, time.Now().UTC())
	updated, err = t.UpdateItem(ctx, c.typ, c.id, Attrs{attrParent: parent, attrName: fresh})
	if err != nil {
		return Moved, utils.WrapMoveError(err)
	}
	c.merge(normalizeAttrs(c.account, updated))
	return MovedWithRename, nil
}

// Delete removes the item from the remote. Folders with content refuse a
// plain delete; Folder.Purge removes recursively.
func (c *itemCore) Delete(ctx context.Context) error {
	t, err := c.transport()
	if err != nil {
		return err
	}
	if err := t.DeleteItem(ctx, c.typ, c.id, false); err != nil {
		return utils.WrapDeleteError(err)
	}
	return nil
}

// Share publishes a shared link built from params and merges the response
// into the cache.
func (c *itemCore) Share(ctx context.Context, params Attrs) (Attrs, error) {
	t, err := c.transport()
	if err != nil {
		return nil, err
	}
	updated, err := t.ShareItem(ctx, c.typ, c.id, params)
	if err != nil {
		return nil, utils.WrapShareError(err)
	}
	norm := normalizeAttrs(c.account, updated)
	c.merge(norm)
	return norm, nil
}

// ShareInfo fetches the item's current sharing attributes and merges them
// into the cache.
func (c *itemCore) ShareInfo(ctx context.Context) (Attrs, error) {
	t, err := c.transport()
	if err != nil {
		return nil, err
	}
	info, err := t.ShareInfo(ctx, c.typ, c.id)
	if err != nil {
		return nil, utils.WrapShareError(err)
	}
	norm := normalizeAttrs(c.account, info)
	c.merge(norm)
	return norm, nil
}

// BasicItem is the generic entity used for payloads without a recognized
// discriminator and for handles built by Account.Item. It has no metadata
// operation of its own, so attribute reads resolve purely against whatever
// is already cached.
type BasicItem struct {
	itemCore
}

func newBasicItem(account *Account, attrs Attrs) *BasicItem {
	return &BasicItem{itemCore: newItemCore(account, TypeItem, attrs)}
}
