package options

// NewClientOption interface contains functions that should be implemented by
// any custom option used to configure a client at construction time. The
// type parameter keeps one client's options from being applied to another
// client type.
type NewClientOption[T any] interface {
	// Apply applies the option to the client being constructed.
	Apply(target *T)
	// NewClientOptionName returns the name of the option.
	NewClientOptionName() string
}

// ApplyOptions applies options to target, skipping nil entries.
func ApplyOptions[T any](target *T, opts ...NewClientOption[T]) {
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.Apply(target)
	}
}
