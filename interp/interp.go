// Package interp is the mainlang execution engine: it owns the variable
// table, the procedure table and the output buffer of a run, and
// dispatches each source line to the command it names.
package interp

import (
	"runtime/debug"
	"sort"
	"strings"

	"fortio.org/log"
	"mainlang.io/mainlang/eval"
	"mainlang.io/mainlang/lexer"
	"mainlang.io/mainlang/object"
)

const (
	// DefaultMaxDepth bounds nested procedure calls and if statements.
	DefaultMaxDepth = 10_000
	// DefaultMaxSteps bounds the statements one top-level line can trigger.
	DefaultMaxSteps = 1_000_000
	// AsmPrefix starts every line emitted by the asm command.
	AsmPrefix = "Simulated assembly: "
)

// Procedure is a user defined function: a name and its definition line.
// It has no parameters, no local scope and no return value; it works
// on the shared variables and output only.
type Procedure struct {
	Name       string
	Definition string // the whole `function <name> <body...>` line.
}

// Body returns the statements of the procedure, in order.
func (p Procedure) Body() []string {
	words := lexer.Words(p.Definition)
	if len(words) <= 2 {
		return nil
	}
	return strings.Split(lexer.Join(words[2:]), ";")
}

// State is the whole mutable state of one run. A State must not be
// shared between goroutines; Run gives every call its own.
type State struct {
	env        *object.Environment
	procedures map[string]Procedure
	out        strings.Builder
	// MaxDepth is the nesting limit for procedure calls and if statements.
	MaxDepth int
	// MaxSteps is the statement budget of each top-level line, <= 0 for unlimited.
	MaxSteps int
	// PanicOk disables panic recovery in Run (for debugging).
	PanicOk bool

	depth       int
	steps       int
	depthWarned bool
	stepsWarned bool
}

func NewState() *State {
	s := &State{
		MaxDepth: DefaultMaxDepth,
		MaxSteps: DefaultMaxSteps,
	}
	s.Reset()
	return s
}

// Reset empties the variables, procedures and output.
func (s *State) Reset() {
	s.env = object.NewEnvironment()
	s.procedures = make(map[string]Procedure)
	s.out.Reset()
	s.depth = 0
	s.steps = 0
	s.depthWarned = false
	s.stepsWarned = false
}

// Run executes code with a fresh state and returns its output.
func Run(code string) string {
	return NewState().Run(code)
}

// Run resets the state, executes every line of code in order and returns
// the accumulated output. It never fails: lines that mean nothing are
// skipped and an unexpected panic ends the run with the output so far.
func (s *State) Run(code string) (output string) {
	s.Reset()
	defer func() {
		if s.PanicOk {
			return
		}
		if r := recover(); r != nil {
			log.Critf("Caught panic: %v", r)
			log.Critf("%s", debug.Stack())
			output = s.out.String()
		}
	}()
	lines := strings.Split(strings.TrimSpace(code), "\n")
	log.LogVf("Running %d line(s)", len(lines))
	for _, line := range lines {
		s.ExecuteLine(line)
	}
	return s.out.String()
}

// Output is everything emitted since the last reset.
func (s *State) Output() string {
	return s.out.String()
}

// Variable returns the current value of a variable.
func (s *State) Variable(name string) (object.Object, bool) {
	return s.env.Get(name)
}

// Variables returns the sorted names of the defined variables.
func (s *State) Variables() []string {
	return s.env.Names()
}

// Procedures returns the sorted names of the defined procedures.
func (s *State) Procedures() []string {
	names := make([]string, 0, len(s.procedures))
	for name := range s.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *State) isProcedure(name string) bool {
	_, ok := s.procedures[name]
	return ok
}

// ExecuteLine parses and executes one line.
func (s *State) ExecuteLine(line string) {
	if s.depth == 0 {
		// new top-level line, new budget.
		s.steps = 0
		s.stepsWarned = false
		s.depthWarned = false
	}
	c := s.Parse(line)
	s.Execute(&c)
}

// Execute performs the effect of a parsed command.
func (s *State) Execute(c *Command) {
	if c.Kind == NOOP {
		if strings.TrimSpace(c.Line) != "" {
			log.Debugf("Ignoring %q", c.Line)
		}
		return
	}
	if !s.step() {
		return
	}
	log.Debugf("Execute %s", c)
	switch c.Kind {
	case LET:
		s.env.Set(c.Name, eval.Evaluate(c.Expr, s.env))
	case FUNCTION:
		if _, ok := s.procedures[c.Name]; ok {
			log.LogVf("Redefining procedure %s", c.Name)
		}
		s.procedures[c.Name] = Procedure{Name: c.Name, Definition: c.Line}
	case IF:
		if c.Then == nil {
			return
		}
		if object.Truthy(eval.Evaluate(c.Expr, s.env)) {
			s.nested(func() { s.Execute(c.Then) })
		}
	case PRINT:
		s.out.WriteString(object.AsString(eval.Evaluate(c.Expr, s.env)))
		s.out.WriteByte('\n')
	case ASM:
		s.out.WriteString(AsmPrefix)
		s.out.WriteString(c.Expr)
		s.out.WriteByte('\n')
	case CALL:
		s.Invoke(c.Name, c.Args)
	case NOOP:
		// handled above.
	}
}

// Invoke runs the body of procedure name, statement by statement.
// args are accepted but not bound to anything. Returns false when there
// is no such procedure or the nesting limit was reached.
func (s *State) Invoke(name string, args []string) bool {
	p, ok := s.procedures[name]
	if !ok {
		log.LogVf("No procedure %s", name)
		return false
	}
	if len(args) > 0 {
		log.LogVf("Procedure %s ignoring %d argument(s): %v", name, len(args), args)
	}
	return s.nested(func() {
		for _, stmt := range p.Body() {
			s.ExecuteLine(stmt)
		}
	})
}

// nested runs fn one level deeper, unless that would exceed MaxDepth.
func (s *State) nested(fn func()) bool {
	maxDepth := s.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if s.depth >= maxDepth {
		if !s.depthWarned {
			log.Warnf("Max depth %d reached, skipping nested statements", maxDepth)
			s.depthWarned = true
		}
		return false
	}
	s.depth++
	defer func() { s.depth-- }()
	fn()
	return true
}

func (s *State) step() bool {
	if s.MaxSteps > 0 && s.steps >= s.MaxSteps {
		if !s.stepsWarned {
			log.Warnf("Max steps %d reached, skipping remaining statements", s.MaxSteps)
			s.stepsWarned = true
		}
		return false
	}
	s.steps++
	return true
}
