package box

import "context"

// Version is a historical version of a file. Versions materialize from
// payloads embedded in file metadata; the remote exposes no addressable
// metadata endpoint for a single version, so detached version handles can
// only read what is cached.
type Version struct {
	itemCore
}

func init() {
	registerItemType(TypeVersion, func(account *Account, attrs Attrs) Item {
		return newVersion(account, attrs)
	})
}

func newVersion(account *Account, attrs Attrs) *Version {
	return &Version{itemCore: newItemCore(account, TypeVersion, attrs)}
}

// Sha1 returns the content hash recorded for the version.
func (v *Version) Sha1(ctx context.Context) (string, error) {
	return v.stringAttr(ctx, attrSha1)
}
