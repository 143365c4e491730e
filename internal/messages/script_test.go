package messages

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `
- quit: {}
- move: {x: 1, y: 2}
- write: {text: hello}
- read: {label: config}
- jump: {}
- move: {x: one}
- [not, a, mapping]
`

func TestDecode_PerEntryResults(t *testing.T) {
	t.Parallel()

	var reads []string
	dec := Decoder{OnRead: func(label string) func() {
		return func() { reads = append(reads, label) }
	}}

	doc := dec.Decode(strings.NewReader(script))
	require.True(t, doc.IsSuccess(), "unexpected error: %v", doc.Err())

	entries := doc.Value()
	require.Len(t, entries, 7)

	for _, e := range entries[:4] {
		require.True(t, e.IsSuccess(), "unexpected error: %v", e.Err())
		assert.NotEqual(t, uuid.Nil, e.Value().ID)
	}
	assert.Equal(t, 2, entries[0].Value().Line)
	assert.Equal(t, "Move: (1, 2)", Describe(entries[1].Value().Message))
	assert.Equal(t, "Write: hello", Describe(entries[2].Value().Message))

	Run(entries[3].Value().Message, nil)
	assert.Equal(t, []string{"config"}, reads)

	assert.ErrorIs(t, entries[4].Err(), ErrUnknownKind)
	assert.ErrorIs(t, entries[5].Err(), ErrMalformedEntry)
	assert.ErrorIs(t, entries[6].Err(), ErrMalformedEntry)

	msgs := Messages(entries)
	assert.Len(t, msgs, 4)
}

func TestDecode_UniqueIDs(t *testing.T) {
	t.Parallel()

	entries := Decoder{}.Decode(strings.NewReader("- quit:\n- quit:\n")).Value()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].Value().ID, entries[1].Value().ID)
}

func TestDecode_DocumentErrors(t *testing.T) {
	t.Parallel()

	notSeq := Decoder{}.Decode(strings.NewReader("quit: {}\n"))
	assert.ErrorIs(t, notSeq.Err(), ErrNotASequence)

	broken := Decoder{}.Decode(strings.NewReader("- [unclosed\n"))
	assert.True(t, broken.IsFailure())

	empty := Decoder{}.Decode(strings.NewReader(""))
	require.True(t, empty.IsSuccess())
	assert.Empty(t, empty.Value())
}

func TestDecode_RejectsTrailingDocuments(t *testing.T) {
	t.Parallel()

	res := Decoder{}.Decode(strings.NewReader("- quit: {}\n---\n- move: {x: 1, y: 2}\n"))
	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), ErrMultipleDocuments)

	broken := Decoder{}.Decode(strings.NewReader("- quit: {}\n---\n- [unclosed\n"))
	require.True(t, broken.IsFailure())
	assert.NotErrorIs(t, broken.Err(), ErrMultipleDocuments)

	single := Decoder{}.Decode(strings.NewReader("---\n- quit: {}\n"))
	require.True(t, single.IsSuccess(), "unexpected error: %v", single.Err())
	assert.Len(t, single.Value(), 1)
}

func TestDecode_ReadWithoutHook(t *testing.T) {
	t.Parallel()

	entries := Decoder{}.Decode(strings.NewReader("- read:\n")).Value()
	require.Len(t, entries, 1)
	assert.NotPanics(t, func() { Run(entries[0].Value().Message, nil) })
}
