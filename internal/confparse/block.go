package confparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBlockNotFound is wrapped by every BlockError.
var ErrBlockNotFound = errors.New("block not found")

// BlockError reports a block header missing from a file.
type BlockError struct {
	Block string
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("confparse: block [%s] not found", e.Block)
}

func (e *BlockError) Unwrap() error { return ErrBlockNotFound }

// Warner receives field-level and unrecognized-command diagnostics.
// *log.Logger from charmbracelet/log satisfies it. An "offset" key counts
// bytes of the data handed to ParseBlock, which for a charset-converted
// file is the decoded UTF-8 text rather than the file on disk.
type Warner interface {
	Warn(msg interface{}, keyvals ...interface{})
}

type discard struct{}

func (discard) Warn(interface{}, ...interface{}) {}

// Discard drops every warning.
var Discard Warner = discard{}

// FieldKind selects how a command's tokens are extracted.
type FieldKind int

const (
	// Ignore accepts the command and discards its values.
	Ignore FieldKind = iota
	// Values reads exactly len(Args) tokens. Either all of them resolve and
	// Set receives them, or nothing is assigned and one warning is logged.
	Values
	// List reads tokens until the end of the line. Each valid token fills
	// the next slot, up to Max; bad or surplus tokens are warned about one by
	// one. Set receives the accepted values when there is at least one.
	List
	// Flags ORs the ids of all resolved tokens into a mask that starts at
	// zero. Set always receives the mask; unresolved tokens are warned about
	// one by one.
	Flags
	// Each calls Set once per resolved token with that token's id.
	Each
	// Words collects raw tokens, at most Max of them, and passes them to
	// SetWords. Fewer than Min tokens is warned about.
	Words
)

// ArgKind is the type of a single value token.
type ArgKind int

const (
	// Int converts with Atoi.
	Int ArgKind = iota
	// Named resolves through Arg.Table.
	Named
)

// TableFunc returns the lookup table for a named argument. It is evaluated
// at parse time so tables built by an earlier parse can be referenced.
type TableFunc func() NamedTable

// Arg describes one value token.
type Arg struct {
	Kind ArgKind

	// Table and MinID apply to Named args: the lookup must return an id of
	// at least MinID. AllowNull additionally accepts the literal NULL as 0.
	// In a Values field, ZeroOnMiss takes an unresolved name as 0 with a
	// warning and keeps the rest of the command.
	Table      TableFunc
	MinID      int
	AllowNull  bool
	ZeroOnMiss bool

	// NonNegative and Bounded apply to Int args.
	NonNegative bool
	Bounded     bool
	Min, Max    int
}

// IntArg is a plain, unvalidated integer.
var IntArg = Arg{Kind: Int}

// NameArg resolves through t, accepting any id >= 0.
func NameArg(t TableFunc) Arg {
	return Arg{Kind: Named, Table: t}
}

// NameOrNull is NameArg that also accepts the literal NULL.
func NameOrNull(t TableFunc) Arg {
	return Arg{Kind: Named, Table: t, AllowNull: true}
}

// NameOrZero is NameOrNull that falls back to 0 for unknown names.
func NameOrZero(t TableFunc) Arg {
	return Arg{Kind: Named, Table: t, AllowNull: true, ZeroOnMiss: true}
}

// FlagArg resolves through t, accepting only ids > 0.
func FlagArg(t TableFunc) Arg {
	return Arg{Kind: Named, Table: t, MinID: 1}
}

// Ints returns n plain integer args.
func Ints(n int) []Arg {
	args := make([]Arg, n)
	for i := range args {
		args[i] = IntArg
	}
	return args
}

func (a Arg) resolve(tok string) (int, bool) {
	switch a.Kind {
	case Named:
		var tbl NamedTable
		if a.Table != nil {
			tbl = a.Table()
		}
		if id, ok := tbl.Lookup(tok); ok && id >= a.MinID {
			return id, true
		}
		if a.AllowNull && strings.EqualFold(tok, "NULL") {
			return 0, true
		}
		return 0, false
	default:
		v := Atoi(tok)
		if a.NonNegative && v < 0 {
			return v, false
		}
		if a.Bounded && (v < a.Min || v > a.Max) {
			return v, false
		}
		return v, true
	}
}

// Field binds one command keyword to a target field.
type Field[T any] struct {
	Command  string
	Kind     FieldKind
	Args     []Arg
	Min, Max int
	Set      func(dst *T, vals []int)
	SetWords func(dst *T, words []string)
}

// Block is a declarative description of one "[name]" section.
type Block[T any] struct {
	Name   string
	Reset  func(dst *T)
	Fields []Field[T]
}

// Commands returns the block's keyword table. Command ids are 1-based
// positions in Fields.
func (blk *Block[T]) Commands() NamedTable {
	t := make(NamedTable, len(blk.Fields))
	for i, f := range blk.Fields {
		t[i] = NamedCommand{Name: f.Command, ID: i + 1}
	}
	return t
}

// ParseBlock resets dst to the block defaults, then applies every
// recognized command of the block found in data. A missing block is
// returned as a *BlockError after the reset, so defaults stand. Bad values
// and unknown commands are reported to w and never abort the parse.
func ParseBlock[T any](data []byte, blk *Block[T], dst *T, w Warner) error {
	if w == nil {
		w = Discard
	}
	if blk.Reset != nil {
		blk.Reset(dst)
	}
	buf := NewBuffer(data)
	if buf.FindBlock(blk.Name) < 0 {
		w.Warn("block not found", "block", blk.Name)
		return &BlockError{Block: blk.Name}
	}
	cmds := blk.Commands()
	for !buf.Done() {
		r := buf.Recognize(cmds)
		if r.Kind == NextBlock {
			break
		}
		switch r.Kind {
		case Command:
			blk.Fields[r.ID-1].apply(buf, blk.Name, dst, w)
		case Unrecognized:
			w.Warn("unrecognized command", "command", r.Word, "block", blk.Name, "offset", r.Offset)
		}
		buf.SkipLine()
	}
	return nil
}

func (f *Field[T]) elem() Arg {
	if len(f.Args) == 0 {
		return IntArg
	}
	return f.Args[0]
}

func (f *Field[T]) apply(buf *Buffer, block string, dst *T, w Warner) {
	switch f.Kind {
	case Ignore:
	case Values:
		vals := make([]int, 0, len(f.Args))
		for _, a := range f.Args {
			tok, ok := buf.Param()
			if !ok {
				break
			}
			v, ok := a.resolve(tok)
			if !ok && a.Kind == Named && a.ZeroOnMiss {
				w.Warn("unknown name, using none", "command", f.Command, "value", tok, "block", block)
				v, ok = 0, true
			}
			if !ok {
				break
			}
			vals = append(vals, v)
		}
		if len(vals) < len(f.Args) {
			w.Warn("incorrect value of parameter", "command", f.Command, "block", block, "expected", len(f.Args), "got", len(vals))
			return
		}
		if f.Set != nil {
			f.Set(dst, vals)
		}
	case List:
		a := f.elem()
		var vals []int
		for tok, ok := buf.Param(); ok; tok, ok = buf.Param() {
			v, good := a.resolve(tok)
			if !good || (f.Max > 0 && len(vals) >= f.Max) {
				w.Warn("too many params or incorrect value", "command", f.Command, "value", tok, "block", block)
				continue
			}
			vals = append(vals, v)
		}
		if len(vals) > 0 && f.Set != nil {
			f.Set(dst, vals)
		}
	case Flags:
		a := f.elem()
		mask := 0
		for tok, ok := buf.Param(); ok; tok, ok = buf.Param() {
			v, good := a.resolve(tok)
			if !good {
				w.Warn("incorrect value of parameter", "command", f.Command, "value", tok, "block", block)
				continue
			}
			mask |= v
		}
		if f.Set != nil {
			f.Set(dst, []int{mask})
		}
	case Each:
		a := f.elem()
		for tok, ok := buf.Param(); ok; tok, ok = buf.Param() {
			v, good := a.resolve(tok)
			if !good {
				w.Warn("incorrect value of parameter", "command", f.Command, "value", tok, "block", block)
				continue
			}
			if f.Set != nil {
				f.Set(dst, []int{v})
			}
		}
	case Words:
		var words []string
		for tok, ok := buf.Param(); ok; tok, ok = buf.Param() {
			if f.Max > 0 && len(words) >= f.Max {
				w.Warn("too many values", "command", f.Command, "block", block, "max", f.Max)
				break
			}
			words = append(words, tok)
		}
		if len(words) < f.Min {
			w.Warn("missing values", "command", f.Command, "block", block, "min", f.Min)
		}
		if f.SetWords != nil {
			f.SetWords(dst, words)
		}
	}
}
