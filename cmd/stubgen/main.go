// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command stubgen generates Qt C++ class skeletons and SIP binding stubs from
// a class description file.
//
// Usage:
//
//	stubgen [flags] api.txt libdir sipdir
//
// Flags:
//
//	-c, --config        YAML configuration file
//	-g, --generators    Comma-separated generators to run (default: libkis,sip)
//	    --dry-run       Print to stdout without writing files
//	    --print-config  Print the effective configuration and exit
//	    --tree          Print the generated files grouped by class
//	-v, --verbose       Verbose output
//	    --version       Show version information
//
// The sipdir argument is used as a path prefix and normally ends with a
// separator. Given any other number of arguments, stubgen prints a usage line
// and exits without writing anything.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/albertocavalcante/stubgen/generator"
	"github.com/albertocavalcante/stubgen/internal/config"
	"github.com/albertocavalcante/stubgen/internal/pipeline"
	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const usage = "Usage: stubgen api.txt libdir sipdir"

// Command holds the parsed command line.
type Command struct {
	Args        []string         `arg:"" optional:"" name:"path" help:"Description file, library directory and binding directory."`
	Config      string           `help:"YAML configuration file." short:"c"`
	Generators  []string         `help:"Comma-separated generators to run (default: libkis,sip)." short:"g" sep:","`
	DryRun      bool             `help:"Print to stdout without writing files."`
	PrintConfig bool             `help:"Print the effective configuration and exit."`
	Tree        bool             `help:"Print the generated files grouped by class."`
	Verbose     bool             `help:"Verbose output." short:"v"`
	Version     kong.VersionFlag `help:"Show version information."`
}

// exit carries a kong exit code out of Parse.
type exit int

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	command := new(Command)
	parser, err := kong.New(
		command,
		kong.Name("stubgen"),
		kong.Description("Generate Qt C++ class skeletons and SIP binding stubs."),
		kong.Vars{"version": fmt.Sprintf("stubgen %s (commit: %s, built: %s)", version, commit, date)},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exit(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(exit)
			if !ok {
				panic(r)
			}
			code = int(e)
		}
	}()

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if command.PrintConfig {
		if err := command.printConfig(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if len(command.Args) != 3 {
		fmt.Fprintln(stdout, usage)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := command.generate(ctx, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (c *Command) generate(ctx context.Context, stdout, stderr io.Writer) error {
	logger := log.New()
	logger.SetOutput(stderr)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	generators := c.Generators
	if len(generators) == 0 {
		generators = cfg.Generators
	}

	summary, err := pipeline.Run(ctx, pipeline.Options{
		Input:      c.Args[0],
		LibDir:     c.Args[1],
		BindingDir: c.Args[2],
		Generators: generators,
		Config:     generator.Config{Options: cfg.Options()},
		DryRun:     c.DryRun,
		Stdout:     stdout,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if c.Tree {
		if err := printTree(stdout, c.Args[0], summary); err != nil {
			return fmt.Errorf("print tree: %w", err)
		}
	}

	logger.WithFields(log.Fields{
		"classes":     len(summary.Classes),
		"files":       len(summary.Files),
		"diagnostics": len(summary.Diagnostics),
	}).Debug("done")
	return nil
}

func (c *Command) loadConfig() (*config.Config, error) {
	if c.Config == "" {
		return config.Default(), nil
	}
	return config.Load(c.Config)
}

func (c *Command) printConfig(stdout io.Writer) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if len(c.Generators) > 0 {
		cfg.Generators = c.Generators
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
