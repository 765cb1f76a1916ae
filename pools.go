package dlis

import "sync"

// recordPools hands out reusable scratch buffers for materialising logical
// records, avoiding a fresh allocation per Record call when a caller reuses
// a *File across many bookmarks.
type recordPools struct {
	bufSize int
	bufs    *sync.Pool
}

func newRecordPools(bufSize int) *recordPools {
	return &recordPools{
		bufSize: bufSize,
		bufs: &sync.Pool{
			New: func() any {
				return make([]byte, 0, bufSize)
			},
		},
	}
}

func (p *recordPools) get() []byte {
	return p.bufs.Get().([]byte)[:0]
}

func (p *recordPools) put(buf []byte) {
	if cap(buf) > p.bufSize*16 {
		// Drop unusually large buffers instead of pinning them in the pool
		// indefinitely after one outsized record.
		return
	}
	p.bufs.Put(buf)
}
