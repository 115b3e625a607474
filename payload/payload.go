package payload

// DefaultContentType is the content-type tag assigned by the generators.
const DefaultContentType = "application/octet-stream"

// Payload is an immutable binary blob of known length.
//
// A Payload is created once, by New or by one of the generators, and never
// mutated afterwards. It is safe to share across goroutines.
type Payload struct {
	data        []byte
	contentType string
}

// New creates a Payload from data. The slice is copied so later mutation of
// data cannot affect the Payload.
func New(data []byte, contentType string) *Payload {
	if contentType == "" {
		contentType = DefaultContentType
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return &Payload{data: copied, contentType: contentType}
}

// newOwned wraps a buffer the caller promises not to touch again.
// Used by the generators to avoid doubling peak memory.
func newOwned(data []byte) *Payload {
	return &Payload{data: data, contentType: DefaultContentType}
}

// Len returns the byte length of the payload.
func (p *Payload) Len() int {
	return len(p.data)
}

// Bytes returns the underlying bytes. Callers must not modify the
// returned slice.
func (p *Payload) Bytes() []byte {
	return p.data
}

// ContentType returns the declared content-type tag.
func (p *Payload) ContentType() string {
	return p.contentType
}
