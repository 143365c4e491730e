package messages

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/oxide/pkg/rop"
)

var log = logging.Logger("messages")

var (
	ErrUnknownKind       = errors.New("unknown message kind")
	ErrMalformedEntry    = errors.New("malformed message entry")
	ErrNotASequence      = errors.New("script must be a sequence of messages")
	ErrMultipleDocuments = errors.New("script must hold a single document")
)

// Envelope is a decoded message with its identity and source position.
type Envelope struct {
	ID      uuid.UUID
	Line    int
	Message Message
}

type readEntry struct {
	Label string `yaml:"label"`
}

// Decoder reads message scripts: a YAML sequence of single-key mappings
// such as `- move: {x: 1, y: 2}`.
type Decoder struct {
	// OnRead builds the callback of a Read entry from its label.
	// Read entries get a no-op callback when it is nil.
	OnRead func(label string) func()
}

// Decode fails as a whole only when the script is not a single YAML document
// holding a sequence. Each entry gets its own Result so one bad entry does
// not hide the others.
func (d Decoder) Decode(r io.Reader) rop.Result[[]rop.Result[Envelope]] {
	dec := yaml.NewDecoder(r)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return rop.Success([]rop.Result[Envelope]{})
		}
		return rop.Fail[[]rop.Result[Envelope]](fmt.Errorf("decode script: %w", err))
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return rop.Fail[[]rop.Result[Envelope]](fmt.Errorf("decode script: %w", err))
	default:
		return rop.Fail[[]rop.Result[Envelope]](fmt.Errorf("line %d: %w", extra.Line, ErrMultipleDocuments))
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return rop.Fail[[]rop.Result[Envelope]](fmt.Errorf("line %d: %w", root.Line, ErrNotASequence))
	}

	out := make([]rop.Result[Envelope], 0, len(root.Content))
	for _, item := range root.Content {
		res := rop.Transform(d.entry(item), func(m Message) Envelope {
			return Envelope{ID: uuid.New(), Line: item.Line, Message: m}
		})
		if res.IsFailure() {
			log.Warnw("rejected script entry", "line", item.Line, "error", res.Err())
		} else {
			log.Debugw("decoded script entry", "line", item.Line, "id", res.Result().ID)
		}
		out = append(out, res)
	}
	return rop.Success(out)
}

func (d Decoder) entry(item *yaml.Node) rop.Result[Message] {
	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		return rop.Fail[Message](fmt.Errorf("line %d: %w: want a single-key mapping", item.Line, ErrMalformedEntry))
	}
	key, value := item.Content[0], item.Content[1]

	switch key.Value {
	case "quit":
		return rop.Success(NewQuit())
	case "move":
		return rop.Transform(decodeAs[Move](value), func(m Move) Message { return kinds.Alt1(m) })
	case "write":
		return rop.Transform(decodeAs[Write](value), func(w Write) Message { return kinds.Alt2(w) })
	case "read":
		return rop.Transform(decodeAs[readEntry](value), func(e readEntry) Message {
			if d.OnRead == nil {
				return NewRead(func() {})
			}
			return NewRead(d.OnRead(e.Label))
		})
	}
	return rop.Fail[Message](fmt.Errorf("line %d: %w %q", key.Line, ErrUnknownKind, key.Value))
}

func decodeAs[T any](n *yaml.Node) rop.Result[T] {
	var v T
	if n.Tag == "!!null" {
		return rop.Success(v)
	}
	if err := n.Decode(&v); err != nil {
		return rop.Fail[T](fmt.Errorf("line %d: %w: %w", n.Line, ErrMalformedEntry, err))
	}
	return rop.Success(v)
}

// Messages keeps the successfully decoded messages in order.
func Messages(entries []rop.Result[Envelope]) []Message {
	out := make([]Message, 0, len(entries))
	for _, e := range entries {
		if env, ok := e.Option().Get(); ok {
			out = append(out, env.Message)
		}
	}
	return out
}
