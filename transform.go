package linerev

// SimpleTransformerFunc converts bytes to bytes.
type SimpleTransformerFunc func([]byte) []byte

// TransformerFunc takes the complete contents of a source and returns the
// bytes to be written, or an error. Reverse is one.
type TransformerFunc func([]byte) ([]byte, error)

// ToTransformerFunc takes a simple transformer and wraps it so it can be used in
// places where a TransformerFunc is expected.
func ToTransformerFunc(f SimpleTransformerFunc) TransformerFunc {
	return func(b []byte) ([]byte, error) {
		return f(b), nil
	}
}
