package files

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/charmap"

	"github.com/vovakirdan/keepercfg/internal/confparse"
)

type countingPool struct {
	gets, puts int
}

func (p *countingPool) Get(size int) []byte { p.gets++; return make([]byte, size) }
func (p *countingPool) Put([]byte)          { p.puts++ }

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func newTestLoader(fsys fstest.MapFS) (*Loader, *countingPool) {
	pool := &countingPool{}
	l := NewLoader(&Resolver{FS: fsys, Groups: DefaultGroups()})
	l.Pool = pool
	return l, pool
}

func TestResolverPath(t *testing.T) {
	r := &Resolver{Groups: map[Group]string{FxData: "fxdata", CrtrData: "data/creatrs", Data: "."}}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"fxdata", r.Path(FxData, "creature.cfg"), "fxdata/creature.cfg"},
		{"creatrs formatted", r.Pathf(CrtrData, "%s.cfg", "imp"), "data/creatrs/imp.cfg"},
		{"root group", r.Path(Data, "x.dat"), "x.dat"},
		{"unknown group", r.Path(Group("levels"), "map1.txt"), "levels/map1.txt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("Path() = %q, expected %q", tc.got, tc.expected)
			}
		})
	}
}

func TestLoadRejectsBySize(t *testing.T) {
	fsys := fstest.MapFS{
		"fxdata/tiny.cfg": {Data: []byte("x")},
		"fxdata/huge.cfg": {Data: bytes.Repeat([]byte("a"), MaxSize+1)},
		"fxdata/bomb.cfg": {Data: gzipped(t, bytes.Repeat([]byte("b"), MaxSize+10))},
		"fxdata/members.cfg": {Data: append(
			gzipped(t, bytes.Repeat([]byte("c"), 110000)),
			gzipped(t, []byte("; tail\n"))...)},
	}

	tests := []struct {
		name     string
		file     string
		expected error
	}{
		{"one byte", "tiny.cfg", ErrTooSmall},
		{"over ceiling", "huge.cfg", ErrTooLarge},
		{"compressed over ceiling", "bomb.cfg", ErrTooLarge},
		{"second gzip member over ceiling", "members.cfg", ErrTooLarge},
		{"missing", "nothing.cfg", ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, pool := newTestLoader(fsys)
			s, err := l.Load(FxData, tc.file)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("Load() error = %v, expected %v", err, tc.expected)
			}
			if s != nil {
				t.Error("Load() returned content for a rejected file")
			}
			if pool.gets != 0 {
				t.Errorf("pool.Get called %d times, expected 0", pool.gets)
			}
		})
	}
}

func TestLoadPlainAndRelease(t *testing.T) {
	text := "[common]\nCREATURES IMP\n"
	l, pool := newTestLoader(fstest.MapFS{"fxdata/creature.cfg": {Data: []byte(text)}})

	s, err := l.Load(FxData, "creature.cfg")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(s.Data) != text {
		t.Errorf("Data = %q, expected %q", s.Data, text)
	}
	if cap(s.buf) < len(text)+Slack {
		t.Errorf("buffer cap = %d, expected at least %d", cap(s.buf), len(text)+Slack)
	}

	s.Release()
	s.Release()
	if pool.puts != 1 {
		t.Errorf("pool.Put called %d times, expected 1", pool.puts)
	}
}

func TestLoadGzip(t *testing.T) {
	text := strings.Repeat("HEALTH 10\n", 50)
	fsys := fstest.MapFS{"creatrs/imp.cfg": {Data: gzipped(t, []byte(text))}}

	n, err := Length(fsys, "creatrs/imp.cfg")
	if err != nil {
		t.Fatalf("Length() failed: %v", err)
	}
	if n != int64(len(text)) {
		t.Errorf("Length() = %d, expected %d", n, len(text))
	}

	l, _ := newTestLoader(fsys)
	s, err := l.Load(CrtrData, "imp.cfg")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer s.Release()
	if string(s.Data) != text {
		t.Error("decompressed content does not match")
	}
}

func TestLoadGzipMembers(t *testing.T) {
	first := strings.Repeat("HEALTH 10\n", 300)
	second := "[attributes]\nNAME IMP\n"
	data := append(gzipped(t, []byte(first)), gzipped(t, []byte(second))...)
	fsys := fstest.MapFS{"creatrs/imp.cfg": {Data: data}}

	n, err := Length(fsys, "creatrs/imp.cfg")
	if err != nil {
		t.Fatalf("Length() failed: %v", err)
	}
	if n != int64(len(first)+len(second)) {
		t.Errorf("Length() = %d, expected %d", n, len(first)+len(second))
	}

	l, pool := newTestLoader(fsys)
	s, err := l.Load(CrtrData, "imp.cfg")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(s.Data) != first+second {
		t.Errorf("loaded %d bytes, expected %d", len(s.Data), len(first)+len(second))
	}
	s.Release()
	if pool.gets != pool.puts {
		t.Errorf("pool.Get called %d times, pool.Put %d times", pool.gets, pool.puts)
	}
}

func TestLoadDecodesCharset(t *testing.T) {
	fsys := fstest.MapFS{"fxdata/names.cfg": {Data: []byte{'N', 'A', 'M', 'E', ' ', 0xE9}}}
	l, _ := newTestLoader(fsys)
	l.Encoding = charmap.Windows1252

	s, err := l.Load(FxData, "names.cfg")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer s.Release()
	if string(s.Data) != "NAME é" {
		t.Errorf("Data = %q, expected %q", s.Data, "NAME é")
	}
}

type offsetRecorder struct{ offsets []interface{} }

func (r *offsetRecorder) Warn(msg interface{}, keyvals ...interface{}) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		if keyvals[i] == "offset" {
			r.offsets = append(r.offsets, keyvals[i+1])
		}
	}
}

func TestLoadOffsetsCountDecodedText(t *testing.T) {
	raw := []byte("[attributes]\n; caf\xE9\nFOOBAR 1\n")
	l, _ := newTestLoader(fstest.MapFS{"fxdata/creature.cfg": {Data: raw}})
	l.Encoding = charmap.Windows1252

	s, err := l.Load(FxData, "creature.cfg")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer s.Release()

	rec := &offsetRecorder{}
	var dst struct{}
	if err := confparse.ParseBlock(s.Data, &confparse.Block[struct{}]{Name: "attributes"}, &dst, rec); err != nil {
		t.Fatalf("ParseBlock() failed: %v", err)
	}
	if len(rec.offsets) != 1 {
		t.Fatalf("got %d offsets, expected 1", len(rec.offsets))
	}
	decoded := bytes.Index(s.Data, []byte("FOOBAR"))
	if rec.offsets[0] != decoded {
		t.Errorf("offset = %v, expected %d", rec.offsets[0], decoded)
	}
	if decoded != bytes.Index(raw, []byte("FOOBAR"))+1 {
		t.Errorf("decoded offset %d does not account for the two-byte é", decoded)
	}
}

func TestEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "windows-1252", "latin1", "cp437"} {
		if _, err := Encoding(name); err != nil {
			t.Errorf("Encoding(%q) failed: %v", name, err)
		}
	}
	if _, err := Encoding("ebcdic"); err == nil {
		t.Error("Encoding(ebcdic) should fail")
	}
}

func TestSyncPoolReuse(t *testing.T) {
	p := NewPool()
	buf := p.Get(100)
	if len(buf) != 100 {
		t.Fatalf("Get() len = %d, expected 100", len(buf))
	}
	p.Put(buf)
	if got := p.Get(50); len(got) != 50 {
		t.Errorf("Get() len = %d, expected 50", len(got))
	}
}
