package lite

import (
	"errors"
	"sync"
)

// ErrStoreBorrowed is the panic value raised when a pixel store is borrowed
// while another borrow is still active.
var ErrStoreBorrowed = errors.New("lite: pixel store already borrowed")

// pixelStore is the byte array shared by every Canvas and Overlay handle
// that refers to the same pixels. At most one borrow is active at a time;
// a second one panics instead of waiting, so a writer that re-enters fails
// fast rather than deadlocking or corrupting the bytes.
type pixelStore struct {
	mu  sync.Mutex
	pix []byte
}

func newPixelStore(n int) *pixelStore {
	return &pixelStore{pix: make([]byte, n)}
}

// borrow runs fn with exclusive access to the bytes.
func (s *pixelStore) borrow(fn func(pix []byte)) {
	if !s.mu.TryLock() {
		panic(ErrStoreBorrowed)
	}
	defer s.mu.Unlock()
	fn(s.pix)
}
