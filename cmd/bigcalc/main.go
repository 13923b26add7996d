package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/xyproto/env/v2"

	bigcalc "github.com/daios-ai/bigcalc"
)

const (
	appName       = "bigcalc"
	historyFile   = ".bigcalc_history"
	defaultPrompt = "> "
)

var banner = fmt.Sprintf("bigcalc %s — arbitrary-precision integer calculator\nCtrl+C cancels input, Ctrl+D exits. Type /exit to quit.", bigcalc.Version)

var (
	resultColor = color.New(color.FgBlue)
	errColor    = color.New(color.FgRed)
	astColor    = color.New(color.FgGreen)
)

func main() {
	if len(os.Args) < 2 {
		if stdinIsTerminal() {
			os.Exit(cmdRepl(nil))
		}
		os.Exit(cmdPipe())
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "version":
		fmt.Println(bigcalc.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`bigcalc %s

Usage:
  %s                            Start the REPL (or read stdin when piped).
  %s repl [--verbose] [--ast]   Start the REPL explicitly.
  %s run <file>                 Evaluate a file line by line.
  %s version                    Print the version.

Expressions use integer literals, letter-only variables, + - * / ^ ( ) =,
and the commands /help and /exit. All arithmetic is arbitrary precision.
`, bigcalc.Version, appName, appName, appName, appName)
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "show caret diagnostics for errors")
	ast := fs.Bool("ast", false, "echo the parsed tree before each result")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := env.Str("BIGCALC_HISTFILE", filepath.Join(home, historyFile))
	prompt := env.Str("BIGCALC_PROMPT", defaultPrompt)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := bigcalc.New(os.Stdout)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if *ast {
			if n, perr := bigcalc.ParseLine(line); perr == nil {
				astColor.Println(bigcalc.FormatNode(n))
			}
		}

		res, err := ip.Run(line)
		if err != nil {
			if *verbose {
				err = bigcalc.WrapWithSource(err, line)
			}
			errColor.Fprintln(os.Stderr, err.Error())
			continue
		}
		if res.Quit {
			return 0
		}
		if !res.Hide {
			resultColor.Println(bigcalc.FormatResult(res.Value))
		}
	}
}

// -----------------------------------------------------------------------------
// run / pipe
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file>\n", appName)
		return 2
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}
	defer f.Close()
	return evalLines(f)
}

func cmdPipe() int {
	return evalLines(os.Stdin)
}

// evalLines feeds each line through the interpreter with the same semantics
// as the REPL loop: blank lines are skipped, errors are printed and the loop
// continues, /exit stops it.
func evalLines(r io.Reader) int {
	ip := bigcalc.New(os.Stdout)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := ip.Run(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		if res.Quit {
			return 0
		}
		if !res.Hide {
			fmt.Println(bigcalc.FormatResult(res.Value))
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
