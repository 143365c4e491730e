package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/oxide/internal/calc"
	"github.com/ib-77/oxide/internal/messages"
	"github.com/ib-77/oxide/pkg/rop"
)

const (
	green = "\x1b[32m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

type printer struct {
	out   io.Writer
	plain bool
}

func newPrinter(c *cli.Context) printer {
	return printer{out: c.App.Writer, plain: c.Bool("plain")}
}

func (p printer) ok(format string, args ...any) {
	p.line(green, format, args...)
}

func (p printer) fail(format string, args ...any) {
	p.line(red, format, args...)
}

func (p printer) line(color, format string, args ...any) {
	if p.plain {
		fmt.Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, color+format+reset+"\n", args...)
}

func optionalString(c *cli.Context, name string) rop.Option[string] {
	return rop.FromComma(c.String(name), c.IsSet(name))
}

func optionalInt(c *cli.Context, name string) rop.Option[int] {
	return rop.FromComma(c.Int(name), c.IsSet(name))
}

func builtinMessages(out io.Writer) []messages.Message {
	return []messages.Message{
		messages.NewQuit(),
		messages.MoveTo(1, 2),
		messages.NewWrite("hello"),
		messages.NewRead(func() { fmt.Fprintln(out, "Reading...") }),
	}
}

func loadScript(path string, out io.Writer, p printer) rop.Result[[]messages.Message] {
	f, err := os.Open(path)
	if err != nil {
		return rop.Fail[[]messages.Message](err)
	}
	defer f.Close()

	dec := messages.Decoder{OnRead: func(label string) func() {
		return func() { fmt.Fprintf(out, "Reading %s...\n", label) }
	}}
	return rop.Transform(dec.Decode(f), func(entries []rop.Result[messages.Envelope]) []messages.Message {
		for _, e := range entries {
			if e.IsFailure() {
				p.fail("skipped: %v", e.Err())
			}
		}
		return messages.Messages(entries)
	})
}

func cmdMessages(c *cli.Context) error {
	out := c.App.Writer
	p := newPrinter(c)

	msgs := rop.Success(builtinMessages(out))
	if path := c.String("script"); path != "" {
		msgs = loadScript(path, out, p)
	}
	list, err := msgs.Get()
	if err != nil {
		return err
	}

	settings := messages.Settings{
		UserName: optionalString(c, "user"),
		MaxMoves: optionalInt(c, "max-moves"),
	}
	for _, m := range list {
		log.Debugw("processing message", "kind", messages.Describe(m))
		messages.Process(m, settings, out)
		messages.Run(m, io.Discard)
	}

	if i, ok := messages.FindMoveIndex(list).Get(); ok {
		pt := messages.Coordinates(list[i]).Value()
		p.ok("first move at %d: (%d, %d)", i, pt.X, pt.Y)
	} else {
		p.ok("no move messages")
	}
	return nil
}

func cmdDivide(c *cli.Context) error {
	p := newPrinter(c)

	if c.NArg() != 2 {
		return fmt.Errorf("divide: want 2 arguments, got %d", c.NArg())
	}
	args, err := calc.ParseInts(c.Args().Slice()).Get()
	if err != nil {
		return fmt.Errorf("divide: %w", err)
	}

	res := calc.Divide(args[0], args[1])
	if then, ok := optionalInt(c, "then").Get(); ok {
		res = res.AndThen(calc.By(then))
	}
	res = res.Transform(calc.Scale(c.Int("scale")))
	if def, ok := optionalInt(c, "recover").Get(); ok {
		if res.IsFailure() {
			log.Warnw("recovered division", "error", res.Err(), "value", def)
		}
		res = calc.Recover(res, def)
	}

	return report[int](p, res)
}

// report prints the outcome and returns its error.
func report[T any](p printer, res rop.WithError[T]) error {
	if !res.IsSuccess() {
		p.fail("Error: %v", res.Err())
		return res.Err()
	}
	p.ok("Result: %v", res.Result())
	return nil
}
