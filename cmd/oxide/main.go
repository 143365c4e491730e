package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	logging "github.com/ipfs/go-log/v2"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("oxide")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		log.Errorf("command failed: %v", err)
		stop()
		os.Exit(1)
	}
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "oxide"
	app.Usage = "dispatch tagged messages and run checked arithmetic pipelines"
	app.Writer = out
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			EnvVars: []string{"OXIDE_LOG_LEVEL"},
			Usage:   "Level for all loggers (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:  "plain",
			Value: !isTerminal(),
			Usage: "Disable colored output",
		},
	}
	app.Before = func(c *cli.Context) error {
		lvl, err := logging.LevelFromString(c.String("log-level"))
		if err != nil {
			return err
		}
		logging.SetAllLoggers(lvl)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "messages",
			Usage:     "Process a script of messages",
			ArgsUsage: " ",
			Action:    cmdMessages,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "script",
					Aliases: []string{"s"},
					Usage:   "YAML message script; a built-in sample is used when empty",
				},
				&cli.StringFlag{
					Name:  "user",
					Usage: "Name reported by quit messages",
				},
				&cli.IntFlag{
					Name:  "max-moves",
					Usage: "Move limit reported by move messages",
				},
			},
		},
		{
			Name:      "divide",
			Usage:     "Divide A by B, optionally dividing again and scaling",
			ArgsUsage: "<A> <B>",
			Action:    cmdDivide,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "then",
					Usage: "Divide the quotient again by this value",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "Multiply the final quotient",
				},
				&cli.IntFlag{
					Name:  "recover",
					Usage: "Print this value instead of failing",
				},
			},
		},
	}
	return app
}
