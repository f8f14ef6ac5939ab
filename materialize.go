package box

import "sync"

// ItemType tags the concrete kind of a remote item, mirroring the type
// discriminator carried by remote payloads.
type ItemType string

const (
	// TypeItem - generic item, used when a payload has no recognized discriminator
	TypeItem = ItemType("item")
	// TypeFile - remote file
	TypeFile = ItemType("file")
	// TypeFolder - remote folder
	TypeFolder = ItemType("folder")
	// TypeComment - comment attached to a file or discussion
	TypeComment = ItemType("comment")
	// TypeDiscussion - discussion thread attached to a folder
	TypeDiscussion = ItemType("discussion")
	// TypeVersion - historical version of a file
	TypeVersion = ItemType("version")
)

// constructor builds a concrete item from normalized attributes.
type constructor func(account *Account, attrs Attrs) Item

var cmu sync.RWMutex
var constructors = make(map[ItemType]constructor)

// registerItemType binds a payload discriminator to its concrete
// constructor. Each entity registers itself in an init function.
func registerItemType(typ ItemType, fn constructor) {
	cmu.Lock()
	defer cmu.Unlock()
	constructors[typ] = fn
}

// constructorFor returns the registered constructor for typ, or nil.
func constructorFor(typ ItemType) constructor {
	cmu.RLock()
	defer cmu.RUnlock()
	return constructors[typ]
}

// normalizeAttrs rewrites a raw transport payload into the canonical cached
// form. The item collection field becomes a children key holding only its
// entries, the legacy parent folder field becomes parent, and nested maps
// carrying a recognized type discriminator are materialized into live items
// bound to account. The discriminator is consumed during materialization;
// maps with an unrecognized discriminator stay plain maps, discriminator
// included.
func normalizeAttrs(account *Account, raw Attrs) Attrs {
	out := make(Attrs, len(raw))
	for k, v := range raw {
		switch k {
		case attrItemCollection:
			if coll, ok := asAttrs(v); ok {
				entries, _ := asSlice(coll[attrEntries])
				out[attrChildren] = materializeEntries(account, entries)
				continue
			}
			out[attrChildren] = normalizeValue(account, v)
		case attrParentFolder:
			out[attrParent] = normalizeValue(account, v)
		default:
			out[k] = normalizeValue(account, v)
		}
	}
	return out
}

// normalizeValue materializes maps with a known type discriminator and
// recurses through plain maps and slices. Scalars pass through untouched.
func normalizeValue(account *Account, v any) any {
	if m, ok := asAttrs(v); ok {
		if tag, ok := stringValue(m[attrType]); ok {
			if fn := constructorFor(ItemType(tag)); fn != nil {
				return fn(account, normalizeAttrs(account, withoutKey(m, attrType)))
			}
		}
		return normalizeAttrs(account, m)
	}
	if s, ok := asSlice(v); ok {
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = normalizeValue(account, e)
		}
		return out
	}
	return v
}

// materializeEntries turns a folder listing's entries into item references.
// Entries without a recognized discriminator still surface as generic items
// as long as they carry an identity; anything else is dropped, so the
// resulting list never holds nil.
func materializeEntries(account *Account, entries []any) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		m, ok := asAttrs(e)
		if !ok {
			continue
		}
		switch normalized := normalizeValue(account, m).(type) {
		case Item:
			items = append(items, normalized)
		case Attrs:
			if _, ok := idString(normalized[attrID]); ok {
				items = append(items, newBasicItem(account, normalized))
			}
		}
	}
	return items
}

func withoutKey(m Attrs, key string) Attrs {
	out := make(Attrs, len(m))
	for k, v := range m {
		if k == key {
			continue
		}
		out[k] = v
	}
	return out
}
