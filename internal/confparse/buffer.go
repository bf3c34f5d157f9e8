// Package confparse implements the line-oriented block/command format used by
// the creature configuration files:
//
//	; comment
//	[blockname]
//	COMMAND value1 value2 ...
//
// Block names and command keywords match case-insensitively. Values are
// whitespace-delimited tokens truncated to WordLen-1 bytes.
package confparse

import "strings"

const (
	// WordLen is the capacity of a single token, terminator included.
	WordLen = 32

	commentMarker = ';'
)

// RecognizedKind classifies the line under the cursor.
type RecognizedKind int

const (
	// Command means a keyword from the table matched.
	Command RecognizedKind = iota
	// Comment covers blank lines and lines starting with the comment marker.
	Comment
	// EndOfBuffer means the cursor ran off the data.
	EndOfBuffer
	// NextBlock means a '[' header starts on this line.
	NextBlock
	// Unrecognized means the keyword is not in the table.
	Unrecognized
)

func (k RecognizedKind) String() string {
	switch k {
	case Command:
		return "command"
	case Comment:
		return "comment"
	case EndOfBuffer:
		return "end-of-buffer"
	case NextBlock:
		return "next-block"
	case Unrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Recognized is the result of Buffer.Recognize.
type Recognized struct {
	Kind   RecognizedKind
	ID     int    // table id, valid for Command
	Word   string // keyword as written, valid for Command and Unrecognized
	Offset int    // byte offset of the keyword in the parsed data
}

// Buffer is a parse cursor over loaded file data. A Buffer is not safe for
// concurrent use; parse distinct buffers instead.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer returns a cursor positioned at the start of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Pos returns the current byte offset.
func (b *Buffer) Pos() int { return b.pos }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Done reports whether the cursor reached the end of the data.
func (b *Buffer) Done() bool { return b.pos >= len(b.data) }

// Rewind moves the cursor back to the start.
func (b *Buffer) Rewind() { b.pos = 0 }

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func isEOL(c byte) bool { return c == '\n' || c == '\r' }

func (b *Buffer) skipBlanks() {
	for b.pos < len(b.data) && isBlank(b.data[b.pos]) {
		b.pos++
	}
}

// SkipLine advances the cursor past the next line break.
func (b *Buffer) SkipLine() {
	for b.pos < len(b.data) && b.data[b.pos] != '\n' {
		b.pos++
	}
	if b.pos < len(b.data) {
		b.pos++
	}
}

// FindBlock searches the whole buffer for a "[name]" header line. On success
// the cursor is left at the start of the line after the header and the
// header's offset is returned. On failure it returns -1 and the cursor
// position is meaningless.
func (b *Buffer) FindBlock(name string) int {
	b.pos = 0
	for b.pos < len(b.data) {
		b.skipBlanks()
		if b.pos >= len(b.data) {
			break
		}
		start := b.pos
		if b.data[b.pos] == '[' {
			end := b.pos + 1
			for end < len(b.data) && b.data[end] != ']' && !isEOL(b.data[end]) {
				end++
			}
			if end < len(b.data) && b.data[end] == ']' {
				header := strings.TrimSpace(string(b.data[start+1 : end]))
				if strings.EqualFold(header, name) {
					b.pos = end
					b.SkipLine()
					return start
				}
			}
		}
		b.SkipLine()
	}
	return -1
}

// Recognize classifies the line under the cursor. For a matched command the
// cursor is left on the first value token, past any blanks or '=' that
// follow the keyword. NextBlock leaves the cursor on the '['; the caller must
// stop iterating the current block without consuming the header.
func (b *Buffer) Recognize(table NamedTable) Recognized {
	b.skipBlanks()
	if b.pos >= len(b.data) {
		return Recognized{Kind: EndOfBuffer, Offset: b.pos}
	}
	c := b.data[b.pos]
	switch {
	case c == '[':
		return Recognized{Kind: NextBlock, Offset: b.pos}
	case c == commentMarker || isEOL(c):
		return Recognized{Kind: Comment, Offset: b.pos}
	}

	start := b.pos
	for b.pos < len(b.data) {
		c := b.data[b.pos]
		if isBlank(c) || isEOL(c) || c == '=' {
			break
		}
		b.pos++
	}
	word := string(b.data[start:b.pos])
	id, ok := table.Lookup(word)
	if !ok {
		return Recognized{Kind: Unrecognized, Word: word, Offset: start}
	}
	for b.pos < len(b.data) && (isBlank(b.data[b.pos]) || b.data[b.pos] == '=') {
		b.pos++
	}
	return Recognized{Kind: Command, ID: id, Word: word, Offset: start}
}

// NextParam extracts the next whitespace-delimited token on the current line.
// At most capacity-1 bytes are kept; the rest of an over-long token is
// skipped. ok is false when the line or the buffer has no more tokens.
func (b *Buffer) NextParam(capacity int) (tok string, ok bool) {
	b.skipBlanks()
	if b.pos >= len(b.data) || isEOL(b.data[b.pos]) {
		return "", false
	}
	start := b.pos
	for b.pos < len(b.data) && !isBlank(b.data[b.pos]) && !isEOL(b.data[b.pos]) {
		b.pos++
	}
	end := b.pos
	if capacity > 0 && end-start > capacity-1 {
		end = start + capacity - 1
	}
	if end <= start {
		return "", false
	}
	return string(b.data[start:end]), true
}

// Param is NextParam with the shared WordLen capacity.
func (b *Buffer) Param() (string, bool) {
	return b.NextParam(WordLen)
}
