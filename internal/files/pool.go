package files

import "sync"

// Pool hands out scratch buffers for file loading.
type Pool interface {
	Get(size int) []byte
	Put(buf []byte)
}

// syncPool recycles buffers up to the loader's ceiling.
type syncPool struct {
	p sync.Pool
}

// NewPool returns a Pool backed by sync.Pool.
func NewPool() Pool {
	return &syncPool{}
}

func (s *syncPool) Get(size int) []byte {
	if v, ok := s.p.Get().(*[]byte); ok && cap(*v) >= size {
		return (*v)[:size]
	}
	return make([]byte, size)
}

func (s *syncPool) Put(buf []byte) {
	buf = buf[:0]
	s.p.Put(&buf)
}
