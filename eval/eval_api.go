package eval

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/log"
	"mainlang.io/mainlang/object"
	"mainlang.io/mainlang/parser"
)

// Exported part of the eval package.

// ErrorPrefix starts the String value standing in for a failed evaluation.
const ErrorPrefix = "Error evaluating expression: "

// ErrParse wraps the parser's messages when the text isn't a valid expression.
var ErrParse = errors.New("parsing error")

// EvalExpression parses text and evaluates it against env.
// Evaluation failures are object.Error values returned as the error
// (use errors.As), parsing failures wrap ErrParse.
//
//nolint:revive // eval.EvalExpression is fine.
func EvalExpression(text string, env *object.Environment) (object.Object, error) {
	node, errs := parser.Parse(text)
	if len(errs) != 0 {
		return nil, fmt.Errorf("%w: %s", ErrParse, strings.Join(errs, "; "))
	}
	res := Eval(node, env)
	if e, ok := res.(object.Error); ok {
		return nil, e
	}
	return res, nil
}

// Evaluate never fails: a failed evaluation yields the String
// "Error evaluating expression: <cause>" in place of the value.
func Evaluate(text string, env *object.Environment) object.Object {
	res, err := EvalExpression(text, env)
	if err != nil {
		log.LogVf("Evaluate(%q): %v", text, err)
		return ErrorValue(err)
	}
	return res
}

// ErrorValue renders err the way a failed evaluation shows up in a program.
func ErrorValue(err error) object.String {
	return object.String{Value: ErrorPrefix + err.Error()}
}
