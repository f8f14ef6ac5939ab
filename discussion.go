package box

// Discussion is a named thread attached to a folder.
type Discussion struct {
	itemCore
}

func init() {
	registerItemType(TypeDiscussion, func(account *Account, attrs Attrs) Item {
		return newDiscussion(account, attrs)
	})
}

func newDiscussion(account *Account, attrs Attrs) *Discussion {
	d := &Discussion{itemCore: newItemCore(account, TypeDiscussion, attrs)}
	d.fetch = d.remoteInfo
	return d
}
