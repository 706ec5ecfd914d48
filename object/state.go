package object

import (
	"sort"

	"fortio.org/log"
)

// Environment is the variable table of one interpreter run.
type Environment struct {
	store  map[string]Object
	numSet int64
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

func (e *Environment) Len() int {
	return len(e.store)
}

func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	return obj, ok
}

// Set binds name to val, replacing any previous value.
func (e *Environment) Set(name string, val Object) Object {
	log.Debugf("Environment.Set(%s, %s)", name, val.Inspect())
	e.store[name] = val
	e.numSet++
	return val
}

// NumSet is the cumulative number of Set calls.
func (e *Environment) NumSet() int64 {
	return e.numSet
}

// Names returns the sorted variable names.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for k := range e.store {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
