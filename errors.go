package box

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNameTaken - the remote already holds an item with the requested name in the target folder
	ErrNameTaken = Error("item name is already in use")

	// ErrNotAuthorized - the access token is missing, expired, or rejected by the remote
	ErrNotAuthorized = Error("not authorized")

	// ErrInvalidInput - the remote rejected the request parameters
	ErrInvalidInput = Error("invalid input")

	// ErrNotFound - the referenced item does not exist on the remote
	ErrNotFound = Error("item not found")

	// ErrUnknownAttribute - the attribute is absent even after a fetch of the item's metadata
	ErrUnknownAttribute = Error("unknown attribute")
)
