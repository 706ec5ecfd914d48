package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal"
	"mainlang.io/mainlang/interp"
)

const (
	PROMPT      = "$ "
	ExitCommand = "exit"
	ParsePrefix = "== Parse ==> "
)

type Options struct {
	ShowParse   bool
	MaxDepth    int
	MaxSteps    int
	HistoryFile string
	MaxHistory  int
	PanicOk     bool
}

func newState(options Options) *interp.State {
	s := interp.NewState()
	if options.MaxDepth > 0 {
		s.MaxDepth = options.MaxDepth
	}
	s.MaxSteps = options.MaxSteps
	s.PanicOk = options.PanicOk
	return s
}

// EvalAll reads all of in and runs it as one program, with a fresh state,
// writing the program output to out.
func EvalAll(in io.Reader, out io.Writer, options Options) error {
	b, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, EvalStringWithOption(options, string(b)))
	return err
}

// EvalString can be used from playground etc for single eval.
// It returns the program output.
func EvalString(what string) string {
	return EvalStringWithOption(Options{MaxSteps: interp.DefaultMaxSteps}, what)
}

// EvalStringWithOption runs what with the given limits. With ShowParse, the
// parsed form of each line precedes its output.
func EvalStringWithOption(o Options, what string) string {
	s := newState(o)
	if !o.ShowParse {
		return s.Run(what)
	}
	out := strings.Builder{}
	for _, line := range strings.Split(strings.TrimSpace(what), "\n") {
		EvalOne(s, line, &out, o)
	}
	return out.String()
}

// EvalOne executes one line on the (persistent) state s and writes the
// output it produced to out.
func EvalOne(s *interp.State, line string, out io.Writer, options Options) {
	before := len(s.Output())
	defer func() {
		if !options.PanicOk {
			if r := recover(); r != nil {
				log.Critf("Caught panic: %v", r)
				log.Critf("%s", debug.Stack())
			}
		}
		_, _ = io.WriteString(out, s.Output()[before:])
	}()
	if options.ShowParse && strings.TrimSpace(line) != "" {
		c := s.Parse(line)
		fmt.Fprintln(out, ParsePrefix+c.String())
	}
	s.ExecuteLine(line)
}

// Interactive runs a read-eval-print loop on the terminal until exit or
// end of input. Variables and procedures persist between lines.
func Interactive(options Options) int {
	term, err := terminal.Open(context.Background())
	if err != nil {
		return log.FErrf("Error creating terminal: %v", err)
	}
	defer term.Close()
	term.SetPrompt(PROMPT)
	term.NewHistory(options.MaxHistory)
	if options.HistoryFile != "" {
		if err = term.LoadHistory(options.HistoryFile); err != nil {
			log.LogVf("Not loading history from %s: %v", options.HistoryFile, err)
		}
		defer func() {
			if err := term.SaveHistory(options.HistoryFile); err != nil {
				log.Warnf("Error saving history to %s: %v", options.HistoryFile, err)
			}
		}()
	}
	autoComplete := NewCompletion()
	term.SetAutoCompleteCallback(autoComplete.AutoComplete())
	s := newState(options)
	for {
		line, err := term.ReadLine()
		if errors.Is(err, terminal.ErrUserInterrupt) {
			log.Infof("Interrupted, type %s or ^D to quit", ExitCommand)
			continue
		}
		if errors.Is(err, io.EOF) {
			log.Infof("Exit requested") // eg ctrl-d
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		if strings.TrimSpace(line) == ExitCommand {
			log.Infof("Bye")
			return 0
		}
		EvalOne(s, line, term.Out, options)
		autoComplete.Add(s.Procedures()...)
		autoComplete.Add(s.Variables()...)
	}
}
