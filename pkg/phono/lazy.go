package phono

import "sync"

// Lazy loads an Index on first use and keeps it, or the load error, for
// the lifetime of the process. There is no reload.
type Lazy struct {
	get func() (*Index, error)
}

// NewLazy returns a Lazy backed by load. load runs at most once, even
// under concurrent Get calls.
func NewLazy(load func() (*Index, error)) *Lazy {
	return &Lazy{get: sync.OnceValues(load)}
}

// Ready wraps an already loaded Index.
func Ready(ix *Index) *Lazy {
	return &Lazy{get: func() (*Index, error) { return ix, nil }}
}

// Get returns the Index, loading it if needed.
func (l *Lazy) Get() (*Index, error) {
	return l.get()
}
