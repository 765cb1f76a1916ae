package mmap

import (
	"errors"
	"io"
	"os"
)

// Mapping is a read-only memory-mapped view over an *os.File, sized to the
// file's length at the time Open was called.
type Mapping struct {
	data []byte
}

// Open maps f's entire current contents read-only with a random-access
// hint. The file must not grow or shrink while the Mapping is in use.
func Open(f *os.File) (*Mapping, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size > MaxSize {
		return nil, errors.New("mmap: file exceeds maximum mappable size")
	}

	data, err := Mmap(f, 0, int(size), RandomAccess)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data}, nil
}

// ReadAt implements io.ReaderAt over the mapped bytes.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(m.data)) {
		return 0, errors.New("mmap: offset out of range")
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close unmaps the underlying memory.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}
	err := Munmap(m.data)
	m.data = nil
	return err
}
