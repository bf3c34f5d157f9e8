package confparse

import "strings"

// NamedCommand binds a config keyword to its numeric id.
type NamedCommand struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

// NamedTable is an ordered list of keywords. Lookups scan in order and the
// first case-insensitive match wins.
type NamedTable []NamedCommand

// Lookup returns the id bound to name.
func (t NamedTable) Lookup(name string) (int, bool) {
	for _, c := range t {
		if strings.EqualFold(c.Name, name) {
			return c.ID, true
		}
	}
	return 0, false
}

// ID returns the id bound to name, or -1 when the table has no such entry.
func (t NamedTable) ID(name string) int {
	if id, ok := t.Lookup(name); ok {
		return id
	}
	return -1
}

// Name returns the first keyword bound to id, or "" if none is.
func (t NamedTable) Name(id int) string {
	for _, c := range t {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// Names returns the keywords in table order.
func (t NamedTable) Names() []string {
	out := make([]string, len(t))
	for i, c := range t {
		out[i] = c.Name
	}
	return out
}

// FlagNames expands a bitmask into the names of the set bits, in table order.
// Entries with id 0 never match.
func (t NamedTable) FlagNames(mask int) []string {
	var out []string
	for _, c := range t {
		if c.ID != 0 && mask&c.ID == c.ID {
			out = append(out, c.Name)
		}
	}
	return out
}

// Atoi converts the leading decimal number of s the way C atoi does:
// leading blanks and one sign are accepted, parsing stops at the first
// non-digit, and text without digits yields 0. Values saturate at the
// 32-bit range.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<31 {
			n = 1 << 31
		}
	}
	if neg {
		return -n
	}
	if n > 1<<31-1 {
		n = 1<<31 - 1
	}
	return n
}
