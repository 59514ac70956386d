package phone

// DefaultBufferSize is the default SymbolBuffer capacity.
const DefaultBufferSize = 10

// SymbolBuffer remembers recently removed characters, newest first, so that
// deleted separators can be put back. It belongs to a single input session
// and is not safe for concurrent use.
type SymbolBuffer struct {
	symbols  []rune
	capacity int
}

// NewSymbolBuffer returns an empty buffer; capacity <= 0 means
// DefaultBufferSize.
func NewSymbolBuffer(capacity int) *SymbolBuffer {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &SymbolBuffer{capacity: capacity}
}

// Add puts removed in front of the buffer, keeping its own left-to-right
// order, and drops whatever falls beyond capacity.
func (b *SymbolBuffer) Add(removed string) {
	if removed == "" {
		return
	}
	chunk := []rune(removed)
	next := make([]rune, 0, min(len(chunk)+len(b.symbols), b.capacity))
	next = append(next, chunk...)
	next = append(next, b.symbols...)
	if len(next) > b.capacity {
		next = next[:b.capacity]
	}
	b.symbols = next
}

// Restore removes and returns up to n characters from the front.
func (b *SymbolBuffer) Restore(n int) string {
	if n <= 0 {
		return ""
	}
	n = min(n, len(b.symbols))
	out := string(b.symbols[:n])
	b.symbols = b.symbols[n:]
	return out
}

// RestoreAll empties the buffer and returns its contents.
func (b *SymbolBuffer) RestoreAll() string {
	return b.Restore(len(b.symbols))
}

// Reset empties the buffer.
func (b *SymbolBuffer) Reset() {
	b.symbols = nil
}

// Len returns the number of buffered characters.
func (b *SymbolBuffer) Len() int { return len(b.symbols) }

// Cap returns the buffer capacity.
func (b *SymbolBuffer) Cap() int { return b.capacity }
