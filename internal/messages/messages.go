package messages

import (
	"fmt"
	"io"

	"github.com/ib-77/oxide/pkg/rop"
	"github.com/ib-77/oxide/pkg/rop/union"
)

type Quit struct{}

type Move struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type Write struct {
	Text string `yaml:"text"`
}

// Read carries a callback that runs when the message is processed.
type Read struct {
	Callback func()
}

type Point struct {
	X, Y int
}

type Message = union.Of4[Quit, Move, Write, Read]

var kinds = union.Declare4[Quit, Move, Write, Read]()

func NewQuit() Message {
	return kinds.Alt0(Quit{})
}

func MoveTo(x, y int) Message {
	return kinds.Alt1(Move{X: x, Y: y})
}

func NewWrite(text string) Message {
	return kinds.Alt2(Write{Text: text})
}

func NewRead(callback func()) Message {
	return kinds.Alt3(Read{Callback: callback})
}

var describe = union.On4(
	func(Quit) string { return "Quit" },
	func(m Move) string { return fmt.Sprintf("Move: (%d, %d)", m.X, m.Y) },
	func(w Write) string { return "Write: " + w.Text },
	func(Read) string { return "Read" },
)

// Describe renders a one-line summary without running Read callbacks.
func Describe(m Message) string {
	return describe.Match(m)
}

// Run dispatches m and runs the callback of a Read message.
func Run(m Message, out io.Writer) {
	union.Visit4(m,
		func(Quit) { fmt.Fprintln(out, "Quit") },
		func(mv Move) { fmt.Fprintf(out, "Move: (%d, %d)\n", mv.X, mv.Y) },
		func(w Write) { fmt.Fprintf(out, "Write: %s\n", w.Text) },
		func(r Read) {
			if r.Callback != nil {
				r.Callback()
			}
		},
	)
}

// Settings are optional knobs that change how messages are processed.
type Settings struct {
	UserName rop.Option[string]
	MaxMoves rop.Option[int]
}

func Process(m Message, s Settings, out io.Writer) {
	union.Visit4(m,
		func(Quit) {
			fmt.Fprintf(out, "%s wants to quit\n", s.UserName.ValueOr("Someone"))
		},
		func(mv Move) {
			fmt.Fprintf(out, "Processing move: (%d, %d)", mv.X, mv.Y)
			if limit, ok := s.MaxMoves.Get(); ok {
				fmt.Fprintf(out, " (limit: %d)", limit)
			}
			fmt.Fprintln(out)
		},
		func(w Write) { fmt.Fprintf(out, "Processing write: %s\n", w.Text) },
		func(Read) { fmt.Fprintln(out, "Processing read operation") },
	)
}

// FindMove returns the first Move message.
func FindMove(msgs []Message) rop.Option[Message] {
	return rop.OptionTransform(FindMoveIndex(msgs), func(i int) Message { return msgs[i] })
}

// FindMoveIndex returns the position of the first Move message.
func FindMoveIndex(msgs []Message) rop.Option[int] {
	for i, m := range msgs {
		if union.Holds[Move](m) {
			return rop.Some(i)
		}
	}
	return rop.None[int]()
}

// Coordinates returns the target of a Move message.
func Coordinates(m Message) rop.Option[Point] {
	return rop.OptionTransform(union.GetIf[Move](m), func(mv Move) Point {
		return Point{X: mv.X, Y: mv.Y}
	})
}
