package confparse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warning struct {
	msg string
	kv  []interface{}
}

type recorder struct {
	warnings []warning
}

func (r *recorder) Warn(msg interface{}, keyvals ...interface{}) {
	r.warnings = append(r.warnings, warning{msg: fmt.Sprint(msg), kv: keyvals})
}

func (w warning) get(key string) interface{} {
	for i := 0; i+1 < len(w.kv); i += 2 {
		if w.kv[i] == key {
			return w.kv[i+1]
		}
	}
	return nil
}

func TestFindBlock(t *testing.T) {
	data := []byte("; [common]\n\n  [Common]\nX 1\n")
	buf := NewBuffer(data)

	assert.Equal(t, 14, buf.FindBlock("common"))
	assert.Equal(t, 23, buf.Pos())
	assert.Equal(t, -1, buf.FindBlock("missing"))
}

func TestFindBlockCaseInsensitive(t *testing.T) {
	upper := NewBuffer([]byte("[ATTRIBUTES]\nHEALTH 5\n"))
	lower := NewBuffer([]byte("[attributes]\nHEALTH 5\n"))

	assert.Equal(t, 0, upper.FindBlock("attributes"))
	assert.Equal(t, 0, lower.FindBlock("ATTRIBUTES"))
	assert.Equal(t, upper.Pos(), lower.Pos())
}

func TestRecognize(t *testing.T) {
	table := NamedTable{{"HEALTH", 2}, {"SIZE", 18}}

	tests := []struct {
		name string
		data string
		kind RecognizedKind
		id   int
		word string
	}{
		{"command", "HEALTH 10", Command, 2, "HEALTH"},
		{"lowercase command", "  size = 1 2", Command, 18, "size"},
		{"comment", "; HEALTH 10", Comment, 0, ""},
		{"blank line", "\n", Comment, 0, ""},
		{"next block", "  [senses]", NextBlock, 0, ""},
		{"end of buffer", "   ", EndOfBuffer, 0, ""},
		{"unrecognized", "FOOBAR 1", Unrecognized, 0, "FOOBAR"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewBuffer([]byte(tc.data)).Recognize(table)
			assert.Equal(t, tc.kind, r.Kind)
			assert.Equal(t, tc.id, r.ID)
			assert.Equal(t, tc.word, r.Word)
		})
	}
}

func TestRecognizeNextBlockKeepsHeader(t *testing.T) {
	buf := NewBuffer([]byte("[senses]\nHEARING 3\n"))
	r := buf.Recognize(NamedTable{{"HEARING", 1}})

	require.Equal(t, NextBlock, r.Kind)
	assert.Equal(t, 0, buf.Pos())
	assert.Equal(t, 0, buf.FindBlock("senses"))
}

func TestRecognizeSkipsSeparators(t *testing.T) {
	buf := NewBuffer([]byte("SIZE =  7 8\n"))
	r := buf.Recognize(NamedTable{{"SIZE", 1}})
	require.Equal(t, Command, r.Kind)

	tok, ok := buf.Param()
	require.True(t, ok)
	assert.Equal(t, "7", tok)
	tok, ok = buf.Param()
	require.True(t, ok)
	assert.Equal(t, "8", tok)
	_, ok = buf.Param()
	assert.False(t, ok)
}

func TestNextParamTruncates(t *testing.T) {
	long := strings.Repeat("a", 40)
	buf := NewBuffer([]byte(long + " next\nother"))

	tok, ok := buf.Param()
	require.True(t, ok)
	assert.Len(t, tok, WordLen-1)

	tok, ok = buf.Param()
	require.True(t, ok)
	assert.Equal(t, "next", tok)

	_, ok = buf.Param()
	assert.False(t, ok, "tokens must not cross the line break")
}

func TestNamedTable(t *testing.T) {
	table := NamedTable{{"MELEE", 1}, {"RANGED", 2}, {"melee", 9}}

	assert.Equal(t, 1, table.ID("Melee"))
	assert.Equal(t, -1, table.ID("MAGIC"))
	assert.Equal(t, "RANGED", table.Name(2))
	assert.Equal(t, "", table.Name(7))
	assert.Equal(t, []string{"MELEE", "RANGED"}, table.FlagNames(3))
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"42", 42},
		{"-7", -7},
		{"+3", 3},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"99999999999", 1<<31 - 1},
		{"-99999999999", -(1 << 31)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, Atoi(tc.in))
		})
	}
}

type sample struct {
	Health   int
	SizeXY   int
	SizeYZ   int
	Levels   [3]int
	Jobs     int
	Bleeds   bool
	Flying   bool
	Windy    bool
	Target   int
	Names    []string
	Notes    int
	Resets   int
	Assigned int
	Evolve   [3]int
}

var sampleJobs = NamedTable{{"NULL", 0}, {"DIG", 2}, {"TRAIN", 8}, {"FIGHT", 128}}

var sampleProps = NamedTable{{"BLEEDS", 1}, {"UNAFFECTED_BY_WIND", 2}, {"FLYING", 7}}

var sampleKinds = NamedTable{{"IMP", 1}, {"DRAGON", 2}}

var sampleBlock = Block[sample]{
	Name: "attributes",
	Reset: func(s *sample) {
		*s = sample{Health: 1, SizeXY: 1, SizeYZ: 1, Windy: true, Resets: s.Resets + 1}
	},
	Fields: []Field[sample]{
		{Command: "NAME", Kind: Ignore},
		{Command: "HEALTH", Kind: Values, Args: Ints(1), Set: func(s *sample, v []int) { s.Health = v[0] }},
		{Command: "SIZE", Kind: Values, Args: Ints(2), Set: func(s *sample, v []int) { s.SizeXY, s.SizeYZ = v[0], v[1] }},
		{Command: "LEVELS", Kind: List, Max: 3, Args: []Arg{{Kind: Int, NonNegative: true}},
			Set: func(s *sample, v []int) { copy(s.Levels[:], v) }},
		{Command: "JOBS", Kind: Flags, Args: []Arg{FlagArg(func() NamedTable { return sampleJobs })},
			Set: func(s *sample, v []int) { s.Jobs = v[0] }},
		{Command: "PROPERTIES", Kind: Each, Args: []Arg{FlagArg(func() NamedTable { return sampleProps })},
			Set: func(s *sample, v []int) {
				switch v[0] {
				case 1:
					s.Bleeds = true
				case 2:
					s.Windy = false
				case 7:
					s.Flying = true
				}
			}},
		{Command: "GROWUP", Kind: Values,
			Args: []Arg{IntArg, NameOrNull(func() NamedTable { return sampleKinds }), IntArg},
			Set:  func(s *sample, v []int) { s.Levels[2], s.Target, s.Notes = v[0], v[1], v[2] }},
		{Command: "EVOLVE", Kind: Values,
			Args: []Arg{IntArg, NameOrZero(func() NamedTable { return sampleKinds }), IntArg},
			Set:  func(s *sample, v []int) { copy(s.Evolve[:], v) }},
		{Command: "NAMES", Kind: Words, Min: 1, Max: 2, SetWords: func(s *sample, w []string) { s.Names = w }},
	},
}

func parseSample(t *testing.T, text string) (sample, *recorder, error) {
	t.Helper()
	var s sample
	rec := &recorder{}
	err := ParseBlock([]byte(text), &sampleBlock, &s, rec)
	return s, rec, err
}

func TestParseBlockAllComments(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\n; nothing here\n\n;HEALTH 5\n")
	require.NoError(t, err)
	assert.Empty(t, rec.warnings)

	var want sample
	sampleBlock.Reset(&want)
	assert.Equal(t, want, s)
}

func TestParseBlockMissing(t *testing.T) {
	s, rec, err := parseSample(t, "[senses]\nHEALTH 5\n")

	var be *BlockError
	require.ErrorAs(t, err, &be)
	assert.ErrorIs(t, err, ErrBlockNotFound)
	assert.Equal(t, "attributes", be.Block)
	assert.Len(t, rec.warnings, 1)
	assert.Equal(t, 1, s.Health, "defaults stand when the block is missing")
}

func TestParseBlockUnknownCommand(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\nHEALTH 10\nFOOBAR 1\nSIZE 3 4\n")
	require.NoError(t, err)

	require.Len(t, rec.warnings, 1)
	w := rec.warnings[0]
	assert.Equal(t, "unrecognized command", w.msg)
	assert.Equal(t, "FOOBAR", w.get("command"))
	assert.Equal(t, 23, w.get("offset"))
	assert.Equal(t, 10, s.Health)
	assert.Equal(t, 3, s.SizeXY)
	assert.Equal(t, 4, s.SizeYZ)
}

func TestParseBlockFixedArity(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		xy, yz   int
		warnings int
	}{
		{"both values", "SIZE 10 20", 10, 20, 0},
		{"single value", "SIZE 10", 1, 1, 1},
		{"no values", "SIZE", 1, 1, 1},
		{"extra values ignored", "SIZE 5 6 7", 5, 6, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, rec, err := parseSample(t, "[attributes]\n"+tc.line+"\n")
			require.NoError(t, err)
			assert.Equal(t, tc.xy, s.SizeXY)
			assert.Equal(t, tc.yz, s.SizeYZ)
			assert.Len(t, rec.warnings, tc.warnings)
		})
	}
}

func TestParseBlockNullSentinel(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\nGROWUP 500 NULL 3\n")
	require.NoError(t, err)
	assert.Empty(t, rec.warnings)
	assert.Equal(t, 500, s.Levels[2])
	assert.Equal(t, 0, s.Target)
	assert.Equal(t, 3, s.Notes)

	s, rec, err = parseSample(t, "[attributes]\nGROWUP 500 dragon 3\n")
	require.NoError(t, err)
	assert.Empty(t, rec.warnings)
	assert.Equal(t, 2, s.Target)

	s, rec, err = parseSample(t, "[attributes]\nGROWUP 500 GOBLIN 3\n")
	require.NoError(t, err)
	assert.Len(t, rec.warnings, 1)
	assert.Equal(t, 0, s.Notes)
}

func TestParseBlockUnknownNameFallsBackToZero(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\nEVOLVE 500 DRAGON 3\nEVOLVE 700 GOBLIN 4\n")
	require.NoError(t, err)
	require.Len(t, rec.warnings, 1)
	assert.Equal(t, "GOBLIN", rec.warnings[0].get("value"))
	assert.Equal(t, [3]int{700, 0, 4}, s.Evolve)

	s, rec, err = parseSample(t, "[attributes]\nEVOLVE 500 NULL 3\n")
	require.NoError(t, err)
	assert.Empty(t, rec.warnings)
	assert.Equal(t, [3]int{500, 0, 3}, s.Evolve)

	s, rec, err = parseSample(t, "[attributes]\nEVOLVE 500 GOBLIN\n")
	require.NoError(t, err)
	assert.Len(t, rec.warnings, 2, "a missing token still rejects the command")
	assert.Equal(t, [3]int{}, s.Evolve)
}

func TestParseBlockEach(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\nPROPERTIES BLEEDS FLYING\n")
	require.NoError(t, err)
	assert.Empty(t, rec.warnings)
	assert.True(t, s.Bleeds)
	assert.True(t, s.Flying)
	assert.True(t, s.Windy)

	s, rec, err = parseSample(t, "[attributes]\nPROPERTIES SPARKLY UNAFFECTED_BY_WIND GLOWS\n")
	require.NoError(t, err)
	assert.Len(t, rec.warnings, 2)
	assert.False(t, s.Windy)
	assert.False(t, s.Bleeds)
}

func TestParseBlockFlags(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\nJOBS FIGHT DIG\n")
	require.NoError(t, err)
	assert.Empty(t, rec.warnings)
	assert.Equal(t, 130, s.Jobs)

	reordered, _, err := parseSample(t, "[attributes]\nJOBS DIG FIGHT\n")
	require.NoError(t, err)
	assert.Equal(t, s.Jobs, reordered.Jobs)

	s, rec, err = parseSample(t, "[attributes]\nJOBS DIG\nJOBS TRAIN NULL SWIM\n")
	require.NoError(t, err)
	assert.Equal(t, 8, s.Jobs, "each JOBS line restarts the mask")
	assert.Len(t, rec.warnings, 2)
}

func TestParseBlockList(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\nLEVELS 4 -1 5 6 7\n")
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, 5, 6}, s.Levels)
	assert.Len(t, rec.warnings, 2)
}

func TestParseBlockWords(t *testing.T) {
	s, rec, err := parseSample(t, "[attributes]\nNAMES IMP DRAGON TROLL\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"IMP", "DRAGON"}, s.Names)
	assert.Len(t, rec.warnings, 1)

	_, rec, err = parseSample(t, "[attributes]\nNAMES\n")
	require.NoError(t, err)
	assert.Len(t, rec.warnings, 1)
}

func TestParseBlockStopsAtNextBlock(t *testing.T) {
	s, _, err := parseSample(t, "[attributes]\nHEALTH 7\n[other]\nHEALTH 99\n")
	require.NoError(t, err)
	assert.Equal(t, 7, s.Health)
}

func TestParseBlockDeterministic(t *testing.T) {
	text := "[attributes]\nHEALTH 7\nJOBS DIG TRAIN\nPROPERTIES FLYING\nLEVELS 1 2\n"

	var s sample
	require.NoError(t, ParseBlock([]byte(text), &sampleBlock, &s, nil))
	first := s
	require.NoError(t, ParseBlock([]byte(text), &sampleBlock, &s, nil))

	first.Resets = s.Resets
	assert.Equal(t, first, s)
}
