package box

import "context"

// Comment is a remark attached to a file or discussion.
type Comment struct {
	itemCore
}

func init() {
	registerItemType(TypeComment, func(account *Account, attrs Attrs) Item {
		return newComment(account, attrs)
	})
}

func newComment(account *Account, attrs Attrs) *Comment {
	c := &Comment{itemCore: newItemCore(account, TypeComment, attrs)}
	c.fetch = c.remoteInfo
	return c
}

// Message returns the comment text.
func (c *Comment) Message(ctx context.Context) (string, error) {
	return c.stringAttr(ctx, attrMessage)
}
