package files

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	// MinSize is the smallest acceptable config file.
	MinSize = 2
	// MaxSize is the default ceiling for config files.
	MaxSize = 65536
	// Slack is added to every scratch buffer beyond the file length.
	Slack = 256
)

var (
	ErrNotFound = errors.New("file not found")
	ErrTooSmall = errors.New("file too small")
	ErrTooLarge = errors.New("file too large")
)

var gzipMagic = []byte{0x1f, 0x8b}

// Encoding returns the decoder for a charset name. Empty, "utf-8" and
// "utf8" mean no conversion.
func Encoding(name string) (encoding.Encoding, error) {
	switch name {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "cp437", "ibm437":
		return charmap.CodePage437, nil
	default:
		return nil, fmt.Errorf("files: unsupported encoding %q", name)
	}
}

// Loader reads config files through a Resolver. When Encoding is set to
// anything but UTF-8, Scratch.Data holds the converted text, so positions
// found in it do not match byte positions in the file.
type Loader struct {
	*Resolver
	MaxSize  int
	Pool     Pool
	Encoding encoding.Encoding
}

// NewLoader returns a Loader with the default size ceiling and a fresh pool.
func NewLoader(r *Resolver) *Loader {
	return &Loader{Resolver: r, MaxSize: MaxSize, Pool: NewPool()}
}

// Scratch is file content held in a pooled buffer. Release must be called
// once the content is no longer needed.
type Scratch struct {
	Name string
	Data []byte

	buf  []byte
	pool Pool
}

// Release returns the buffer to its pool. It is safe to call more than once.
func (s *Scratch) Release() {
	if s == nil || s.buf == nil {
		return
	}
	s.pool.Put(s.buf)
	s.buf = nil
	s.Data = nil
}

// Length returns the content length of name, looking through gzip
// compression. A missing file yields ErrNotFound. Compressed files are
// decompressed in full to count them; the size recorded in the gzip trailer
// only covers the last member and is not used.
func Length(fsys fs.FS, name string) (int64, error) {
	return length(fsys, name, -1)
}

// length stops counting a compressed stream once it passes limit, so a
// result above limit only means "too large". A negative limit counts all.
func length(fsys fs.FS, name string, limit int64) (int64, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return -1, fmt.Errorf("files: %s: %w", name, ErrNotFound)
		}
		return -1, fmt.Errorf("files: cannot open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return -1, fmt.Errorf("files: cannot stat %s: %w", name, err)
	}
	size := info.Size()

	head := make([]byte, 2)
	if _, err := io.ReadFull(f, head); err != nil || !bytes.Equal(head, gzipMagic) {
		return size, nil
	}

	zr, err := gzip.NewReader(io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		return -1, fmt.Errorf("files: bad gzip stream in %s: %w", name, err)
	}
	defer zr.Close()
	var r io.Reader = zr
	if limit >= 0 {
		r = io.LimitReader(zr, limit+1)
	}
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return -1, fmt.Errorf("files: bad gzip stream in %s: %w", name, err)
	}
	return n, nil
}

// Load validates the length of name inside group and reads it into a
// pooled buffer. Files shorter than MinSize or longer than the ceiling are
// rejected before any buffer is taken from the pool.
func (l *Loader) Load(group Group, name string) (*Scratch, error) {
	p := l.Path(group, name)
	limit := l.MaxSize
	if limit <= 0 {
		limit = MaxSize
	}
	size, err := length(l.FS, p, int64(limit))
	if err != nil {
		return nil, err
	}
	if size < MinSize {
		return nil, fmt.Errorf("files: %s: %w", p, ErrTooSmall)
	}
	if size > int64(limit) {
		return nil, fmt.Errorf("files: %s: %w", p, ErrTooLarge)
	}

	pool := l.Pool
	if pool == nil {
		pool = NewPool()
	}
	buf := pool.Get(int(size) + Slack)
	s := &Scratch{Name: p, buf: buf, pool: pool}

	n, err := l.readInto(p, buf)
	if err != nil {
		s.Release()
		return nil, err
	}
	s.Data = buf[:n]

	if l.Encoding != nil && l.Encoding != unicode.UTF8 {
		decoded, err := l.Encoding.NewDecoder().Bytes(s.Data)
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("files: cannot decode %s: %w", p, err)
		}
		s.Data = decoded
	}
	return s, nil
}

func (l *Loader) readInto(name string, buf []byte) (int, error) {
	f, err := l.FS.Open(name)
	if err != nil {
		return 0, fmt.Errorf("files: cannot open %s: %w", name, err)
	}
	defer f.Close()

	head := make([]byte, 2)
	hn, _ := io.ReadFull(f, head)
	r := io.MultiReader(bytes.NewReader(head[:hn]), f)
	if hn == 2 && bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return 0, fmt.Errorf("files: bad gzip stream in %s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	}

	// buf holds the measured length plus Slack; filling it means the content
	// grew after it was measured.
	n, err := io.ReadFull(io.LimitReader(r, int64(len(buf))), buf)
	switch {
	case err == nil:
		return 0, fmt.Errorf("files: %s: %w", name, ErrTooLarge)
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
	default:
		return 0, fmt.Errorf("files: cannot read %s: %w", name, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("files: %s: %w", name, ErrTooSmall)
	}
	return n, nil
}
