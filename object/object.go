package object

import (
	"math"
	"strconv"
)

type Type uint8

type Object interface {
	Type() Type
	Inspect() string
}

const (
	UNKNOWN Type = iota
	INTEGER
	FLOAT
	BOOLEAN
	STRING
	ERROR
	LAST
)

//go:generate stringer -type=Type
var _ = LAST.String() // force compile error if go generate is missing.

var (
	TRUE  = Boolean{Value: true}
	FALSE = Boolean{Value: false}
)

func NativeBoolToBooleanObject(input bool) Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// IsNumber is true for Integer and Float.
func IsNumber(o Object) bool {
	t := o.Type()
	return t == INTEGER || t == FLOAT
}

// Truthy follows the usual scripting rules: false, zero and the empty
// string are false, everything else (error values included) is true.
func Truthy(o Object) bool {
	switch o := o.(type) {
	case Boolean:
		return o.Value
	case Integer:
		return o.Value != 0
	case Float:
		return o.Value != 0
	case String:
		return o.Value != ""
	default:
		return true
	}
}

// AsString is the form used when a value is printed or concatenated:
// strings as is, everything else as Inspect().
func AsString(o Object) string {
	if s, ok := o.(String); ok {
		return s.Value
	}
	return o.Inspect()
}

func Equals(left, right Object) Boolean {
	switch left := left.(type) {
	case Integer:
		switch right := right.(type) {
		case Integer:
			return NativeBoolToBooleanObject(left.Value == right.Value)
		case Float:
			return NativeBoolToBooleanObject(float64(left.Value) == right.Value)
		}
	case Float:
		switch right := right.(type) {
		case Integer:
			return NativeBoolToBooleanObject(left.Value == float64(right.Value))
		case Float:
			return NativeBoolToBooleanObject(left.Value == right.Value)
		}
	case String:
		if right, ok := right.(String); ok {
			return NativeBoolToBooleanObject(left.Value == right.Value)
		}
	case Boolean:
		if right, ok := right.(Boolean); ok {
			return NativeBoolToBooleanObject(left.Value == right.Value)
		}
	}
	return FALSE
}

type Integer struct {
	Value int64
}

func (i Integer) Inspect() string {
	return strconv.FormatInt(i.Value, 10)
}

func (i Integer) Type() Type {
	return INTEGER
}

type Float struct {
	Value float64
}

func (f Float) Type() Type {
	return FLOAT
}

// Plain decimal notation except for very small or very large magnitudes.
func (f Float) Inspect() string {
	abs := math.Abs(f.Value)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f.Value, 'g', -1, 64)
	}
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

type Boolean struct {
	Value bool
}

func (b Boolean) Type() Type {
	return BOOLEAN
}

func (b Boolean) Inspect() string {
	return strconv.FormatBool(b.Value)
}

type String struct {
	Value string
}

func (s String) Type() Type {
	return STRING
}

func (s String) Inspect() string {
	return strconv.Quote(s.Value)
}

// Error is an evaluation failure. It only lives inside the evaluator;
// callers get it back as a Go error or as a rendered String.
type Error struct {
	Value string // message
}

func (e Error) Type() Type      { return ERROR }
func (e Error) Inspect() string { return "<err: " + e.Value + ">" }
func (e Error) Error() string   { return e.Value }
