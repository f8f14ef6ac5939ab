package box

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ionutliviu/box-go-sdk/utils"
)

// defaultListLimit is the page size used when aggregating folder listings.
const defaultListLimit = 1000

// rootFolderID addresses the account's root folder on the remote.
const rootFolderID = "0"

// Folder is a remote folder. Its metadata fetch aggregates the complete
// listing: pages are pulled until the total reported by the first response
// is reached, so the children attribute always holds the whole ordered
// listing rather than a single page.
type Folder struct {
	itemCore
}

func init() {
	registerItemType(TypeFolder, func(account *Account, attrs Attrs) Item {
		return newFolder(account, attrs)
	})
}

func newFolder(account *Account, attrs Attrs) *Folder {
	f := &Folder{itemCore: newItemCore(account, TypeFolder, attrs)}
	f.fetch = f.fetchInfo
	return f
}

// Criteria filters items by attribute values. Keys name cached attributes;
// the type key matches the discriminator tag. Numbers compare by magnitude,
// so int criteria match float payload values.
type Criteria map[string]any

// CreateOutcome reports how a CreateFolderWithUniqueName call concluded.
// Its value is only meaningful when the returned error is nil.
type CreateOutcome int

const (
	// Created - the folder was created under the requested name
	Created CreateOutcome = iota
	// CreatedWithRename - the requested name was taken and the folder was
	// created under a timestamp-disambiguated name instead
	CreatedWithRename
)

func (f *Folder) fetchInfo(ctx context.Context) (Attrs, error) {
	return f.fetchListing(ctx, defaultListLimit, 0)
}

// fetchListing retrieves folder metadata and aggregates its item collection.
// The total reported by the first response drives the loop: further pages
// are fetched with the offset advanced by limit until the entries collected
// since the starting offset reach that total. An empty page ends the loop
// early so a short remote cannot wedge it.
func (f *Folder) fetchListing(ctx context.Context, limit, offset int) (Attrs, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	t, err := f.transport()
	if err != nil {
		return nil, err
	}
	info, err := t.FolderInfo(ctx, f.id, limit, offset)
	if err != nil {
		return nil, err
	}
	coll, ok := asAttrs(info[attrItemCollection])
	if !ok {
		return info, nil
	}
	entries, _ := asSlice(coll[attrEntries])
	total, _ := intValue(coll[attrTotalCount])
	start := offset
	for len(entries)+start < total {
		offset += limit
		page, err := t.FolderInfo(ctx, f.id, limit, offset)
		if err != nil {
			return nil, err
		}
		pageColl, ok := asAttrs(page[attrItemCollection])
		if !ok {
			break
		}
		pageEntries, _ := asSlice(pageColl[attrEntries])
		if len(pageEntries) == 0 {
			break
		}
		entries = append(entries, pageEntries...)
	}
	coll[attrEntries] = entries
	info[attrItemCollection] = coll
	return info, nil
}

// Children returns the folder's materialized listing, fetching it on first
// use. Order is the remote's listing order.
func (f *Folder) Children(ctx context.Context) ([]Item, error) {
	v, err := f.Get(ctx, attrChildren)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]Item)
	if !ok {
		return nil, fmt.Errorf("folder children attribute is %T, not an item list", v)
	}
	return items, nil
}

// ChildrenAt refreshes the listing with a caller-chosen page size and
// starting offset, then returns the aggregated result. Aggregation still
// runs to the reported total, so a nonzero offset skips exactly the first
// offset entries of the listing.
func (f *Folder) ChildrenAt(ctx context.Context, limit, offset int) ([]Item, error) {
	raw, err := f.fetchListing(ctx, limit, offset)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	f.cached = true
	f.merge(normalizeAttrs(f.account, raw))
	return f.Children(ctx)
}

// Files returns the file children, preserving listing order.
func (f *Folder) Files(ctx context.Context) ([]*File, error) {
	kids, err := f.Children(ctx)
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(kids))
	for _, kid := range kids {
		if file, ok := kid.(*File); ok {
			files = append(files, file)
		}
	}
	return files, nil
}

// Folders returns the sub-folder children, preserving listing order.
func (f *Folder) Folders(ctx context.Context) ([]*Folder, error) {
	kids, err := f.Children(ctx)
	if err != nil {
		return nil, err
	}
	folders := make([]*Folder, 0, len(kids))
	for _, kid := range kids {
		if folder, ok := kid.(*Folder); ok {
			folders = append(folders, folder)
		}
	}
	return folders, nil
}

// Find returns the direct children matching criteria, in listing order.
func (f *Folder) Find(ctx context.Context, criteria Criteria) ([]Item, error) {
	return f.find(ctx, criteria, false)
}

// FindRecursive returns the matches from the folder's whole subtree. Direct
// matches come first, then each sub-folder's recursive matches in listing
// order.
func (f *Folder) FindRecursive(ctx context.Context, criteria Criteria) ([]Item, error) {
	return f.find(ctx, criteria, true)
}

func (f *Folder) find(ctx context.Context, criteria Criteria, recursive bool) ([]Item, error) {
	kids, err := f.Children(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]Item, 0)
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		if matchesCriteria(ctx, kid, criteria) {
			matches = append(matches, kid)
		}
	}
	if !recursive {
		return matches, nil
	}
	for _, kid := range kids {
		sub, ok := kid.(*Folder)
		if !ok {
			continue
		}
		subMatches, err := sub.find(ctx, criteria, true)
		if err != nil {
			return nil, err
		}
		matches = append(matches, subMatches...)
	}
	return matches, nil
}

// matchesCriteria reports whether every criteria entry matches the item. An
// attribute read failure counts as a non-match rather than an error, so
// heterogeneous listings filter cleanly.
func matchesCriteria(ctx context.Context, it Item, criteria Criteria) bool {
	for key, want := range criteria {
		if key == attrType {
			if !equalValues(want, it.Type()) {
				return false
			}
			continue
		}
		got, err := it.Get(ctx, key)
		if err != nil {
			return false
		}
		if !equalValues(want, got) {
			return false
		}
	}
	return true
}

// At resolves a slash-separated path relative to the folder. Empty and dot
// segments are no-ops, a dot-dot segment steps to the parent, a leading
// slash restarts resolution at the account root, and any other segment
// matches a child by name. A step that dangles resolves the whole path to
// (nil, nil) rather than an error.
//
// A trailing slash asks for a folder: when the resolved item is not one,
// its parent's children are searched for a folder under the resolved item's
// own name, which again may come up nil.
func (f *Folder) At(ctx context.Context, path string) (Item, error) {
	var current Item = f
	if strings.HasPrefix(path, "/") {
		root, err := f.rootAncestor(ctx)
		if err != nil {
			return nil, err
		}
		current = root
	}
	for _, segment := range strings.Split(path, "/") {
		if current == nil {
			return nil, nil
		}
		switch segment {
		case "", ".":
		case "..":
			parent, err := current.Parent(ctx)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				current = nil
			} else {
				current = parent
			}
		default:
			folder, ok := current.(*Folder)
			if !ok {
				return nil, nil
			}
			matches, err := folder.Find(ctx, Criteria{attrName: segment})
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				current = nil
			} else {
				current = matches[0]
			}
		}
	}
	if current == nil {
		return nil, nil
	}
	if strings.HasSuffix(path, "/") {
		if _, ok := current.(*Folder); !ok {
			return f.folderSibling(ctx, current)
		}
	}
	return current, nil
}

// rootAncestor climbs parent links until an item without a parent is
// reached.
func (f *Folder) rootAncestor(ctx context.Context) (Item, error) {
	var current Item = f
	for {
		parent, err := current.Parent(ctx)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return current, nil
		}
		current = parent
	}
}

// folderSibling re-resolves it as a folder through its parent's listing,
// searching under the item's own name.
func (f *Folder) folderSibling(ctx context.Context, it Item) (Item, error) {
	name, err := it.Name(ctx)
	if err != nil {
		return nil, err
	}
	parent, err := it.Parent(ctx)
	if err != nil || parent == nil {
		return nil, err
	}
	matches, err := parent.Find(ctx, Criteria{attrName: name, attrType: TypeFolder})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// CreateFolder creates a sub-folder with the given name.
func (f *Folder) CreateFolder(ctx context.Context, name string) (*Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("non-empty string for name is required")
	}
	t, err := f.transport()
	if err != nil {
		return nil, err
	}
	created, err := t.CreateFolder(ctx, f.id, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	return newFolder(f.account, normalizeAttrs(f.account, created)), nil
}

// CreateFolderWithUniqueName creates a sub-folder, retrying once under a
// timestamp-disambiguated name when the requested name is already taken.
func (f *Folder) CreateFolderWithUniqueName(ctx context.Context, name string) (*Folder, CreateOutcome, error) {
	folder, err := f.CreateFolder(ctx, name)
	if err == nil {
		return folder, Created, nil
	}
	if !errors.Is(err, ErrNameTaken) {
		return nil, Created, err
	}
	folder, err = f.CreateFolder(ctx, utils.DisambiguateName(name, false, time.Now().UTC()))
	if err != nil {
		return nil, Created, err
	}
	return folder, CreatedWithRename, nil
}

// Upload stores content as a new file named name in the folder.
func (f *Folder) Upload(ctx context.Context, name string, content io.Reader) (*File, error) {
	if name == "" {
		return nil, fmt.Errorf("non-empty string for name is required")
	}
	t, err := f.transport()
	if err != nil {
		return nil, err
	}
	uploaded, err := t.UploadFile(ctx, f.id, name, content)
	if err != nil {
		return nil, utils.WrapUploadError(err)
	}
	return newFile(f.account, normalizeAttrs(f.account, uploaded)), nil
}

// Discussions lists the discussions attached to the folder.
func (f *Folder) Discussions(ctx context.Context) ([]*Discussion, error) {
	t, err := f.transport()
	if err != nil {
		return nil, err
	}
	raw, err := t.Discussions(ctx, f.id)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	discussions := make([]*Discussion, 0, len(raw))
	for _, attrs := range raw {
		discussions = append(discussions, newDiscussion(f.account, normalizeAttrs(f.account, attrs)))
	}
	return discussions, nil
}

// CreateDiscussion starts a named discussion on the folder.
func (f *Folder) CreateDiscussion(ctx context.Context, name string) (*Discussion, error) {
	if name == "" {
		return nil, fmt.Errorf("non-empty string for name is required")
	}
	t, err := f.transport()
	if err != nil {
		return nil, err
	}
	created, err := t.CreateDiscussion(ctx, f.id, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	return newDiscussion(f.account, normalizeAttrs(f.account, created)), nil
}

// Purge deletes the folder and everything beneath it.
func (f *Folder) Purge(ctx context.Context) error {
	t, err := f.transport()
	if err != nil {
		return err
	}
	if err := t.DeleteItem(ctx, TypeFolder, f.id, true); err != nil {
		return utils.WrapDeleteError(err)
	}
	return nil
}
