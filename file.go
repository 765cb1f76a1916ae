package dlis

import (
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/petroform/dlis/mmap"
)

// byteSource is a read-only random-access byte provider: both *os.File and
// an mmap'd view satisfy it, letting the framing/indexer/materialiser code
// stay oblivious to which one backs a File.
type byteSource interface {
	ReadAt(p []byte, off int64) (int, error)
	Close() error
}

// Options configures Open. There are no flags or environment variables;
// every setting is passed explicitly by the caller.
type Options struct {
	// WarnLogger receives non-fatal warnings (VRL version mismatches,
	// duplicate OBNAMEs, unexpected labels in object attributes). A nil
	// logger discards warnings.
	WarnLogger *zap.Logger

	// BufferSize seeds the materialiser's scratch buffer capacity. Zero
	// selects a default of 8KiB, matching spec's "initially reserved
	// ~8 KiB" guidance.
	BufferSize int

	// Mmap backs the file with a read-only memory mapping instead of
	// os.File.ReadAt. Useful when the same bookmarks are read repeatedly.
	Mmap bool
}

func (o Options) bufferSize() int {
	if o.BufferSize > 0 {
		return o.BufferSize
	}
	return 8 * 1024
}

func (o Options) logger() *zap.Logger {
	if o.WarnLogger != nil {
		return o.WarnLogger
	}
	return zap.NewNop()
}

// File wraps one exclusively-owned byte source for a single DLIS file. All
// operations are synchronous; concurrent calls on the same File are
// undefined. A File is not safe to share across goroutines.
type File struct {
	src    byteSource
	pos    int64
	closed bool

	opt   Options
	warn  *zap.Logger
	stats *statCounters
	pools *recordPools
}

// warnf emits a non-fatal warning through the host-provided warning
// channel and bumps the warning counter.
func (f *File) warnf(format string, args ...any) {
	f.stats.warnings.Inc()
	f.warn.Sugar().Warnf(format, args...)
}

// Open opens path for reading. The returned File owns the underlying
// descriptor (or mapping); callers must call Close.
func Open(path string, opt Options) (*File, error) {
	osf, err := os.Open(path)
	if err != nil {
		return nil, ioErrf(err, "opening %s", path)
	}

	var src byteSource = osf
	if opt.Mmap {
		m, err := mmap.Open(osf)
		if err != nil {
			osf.Close()
			return nil, ioErrf(err, "mmapping %s", path)
		}
		src = mmapSource{f: osf, m: m}
	}

	return &File{
		src:   src,
		opt:   opt,
		warn:  opt.logger(),
		stats: newStats(),
		pools: newRecordPools(opt.bufferSize()),
	}, nil
}

// mmapSource adapts an mmap.Mapping to byteSource, keeping the original
// os.File around so Close releases both.
type mmapSource struct {
	f *os.File
	m *mmap.Mapping
}

func (s mmapSource) ReadAt(p []byte, off int64) (int, error) {
	return s.m.ReadAt(p, off)
}

func (s mmapSource) Close() error {
	return multierr.Append(s.m.Close(), s.f.Close())
}

// Close releases the underlying descriptor or mapping. Close is idempotent;
// subsequent calls return nil without error.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.src.Close()
}

// Stats returns the File's read-only accounting counters.
func (f *File) Stats() Stats {
	return f.stats.snapshot()
}

// ReleaseRecord returns a buffer previously obtained from Record to the
// File's internal pool for reuse by a future Record call. Callers that
// don't need the buffer past their next Record call may pass it here
// instead of letting it be reclaimed by the garbage collector.
func (f *File) ReleaseRecord(buf []byte) {
	f.pools.put(buf)
}

// readAt reads exactly n bytes at the given absolute offset, leaving the
// File's cursor positioned just past them.
func (f *File) readAt(off int64, n int) ([]byte, error) {
	if f.closed {
		return nil, ErrClosed
	}
	buf := make([]byte, n)
	nr, err := f.src.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return nil, ioErrf(err, "reading %d bytes at offset %d", n, off)
	}
	if nr < n {
		return nil, eofErrf(off, "need %d bytes, read %d before EOF", n, nr)
	}
	f.pos = off + int64(n)
	return buf, nil
}

// readNext reads exactly n bytes at the File's current cursor position,
// advancing it past them.
func (f *File) readNext(n int) ([]byte, error) {
	return f.readAt(f.pos, n)
}

// skip advances the cursor by n bytes without reading them.
func (f *File) skip(n int) {
	f.pos += int64(n)
}

// Eof peeks one byte past the current cursor without advancing it. It
// reports true only when no further bytes are available.
func (f *File) Eof() (bool, error) {
	if f.closed {
		return false, ErrClosed
	}
	var b [1]byte
	n, err := f.src.ReadAt(b[:], f.pos)
	if n > 0 {
		return false, nil
	}
	if err != nil && err != io.EOF {
		return false, ioErrf(err, "peeking at offset %d", f.pos)
	}
	return true, nil
}
