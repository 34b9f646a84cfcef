package main

import (
	"log"
	"os"

	"github.com/go-synacor/vm/synacor"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v2"
)

const defaultProgram = "challenge.bin"

func main() {
	app := &cli.App{
		Name:      "synacor",
		Usage:     "run a Synacor-architecture program binary",
		Version:   "v0.1.0",
		ArgsUsage: "[program.bin]",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = defaultProgram
	}

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(errors.Wrapf(err, "open %q", path), 1)
	}
	defer f.Close()

	m := synacor.NewMachine(synacor.NewWriterSink(os.Stdout), synacor.NewReaderSource(os.Stdin))

	if err := m.Load(f); err != nil {
		return cli.Exit(errors.Wrapf(err, "load %q", path), 1)
	}

	if err := m.Run(); err != nil {
		return cli.Exit(errors.Wrap(err, "run"), 1)
	}

	return nil
}
