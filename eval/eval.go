package eval

import (
	"fmt"
	"math"

	"fortio.org/log"
	"fortio.org/safecast"
	"mainlang.io/mainlang/ast"
	"mainlang.io/mainlang/object"
)

// Eval evaluates an expression tree against the variable table.
// Failures are returned as object.Error values, never panics.
// The environment is only read.
func Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {
	case *ast.Empty:
		return object.String{}
	case *ast.IntegerLiteral:
		return object.Integer{Value: node.Val}
	case *ast.FloatLiteral:
		return object.Float{Value: node.Val}
	case *ast.StringLiteral:
		return object.String{Value: node.Val}
	case *ast.Boolean:
		return object.NativeBoolToBooleanObject(node.Val)
	case *ast.Identifier:
		return evalIdentifier(node, env)
	case *ast.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *ast.InfixExpression:
		return evalInfixExpression(node, env)
	}
	return errorf("unknown node type: %T", node)
}

func errorf(format string, args ...any) object.Error {
	return object.Error{Value: fmt.Sprintf(format, args...)}
}

func isError(o object.Object) bool {
	return o.Type() == object.ERROR
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Val); ok {
		return val
	}
	return errorf("identifier not found: %s", node.Val)
}

func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return object.NativeBoolToBooleanObject(!object.Truthy(right))
	case "-":
		switch right := right.(type) {
		case object.Integer:
			return object.Integer{Value: -right.Value}
		case object.Float:
			return object.Float{Value: -right.Value}
		}
	case "+":
		if object.IsNumber(right) {
			return right
		}
	}
	return errorf("unknown operator: %s%s", operator, right.Type())
}

func evalInfixExpression(node *ast.InfixExpression, env *object.Environment) object.Object {
	left := Eval(node.Left, env)
	if isError(left) {
		return left
	}
	// && and || short circuit: the right side isn't evaluated when the left decides.
	switch node.Operator {
	case "&&":
		if !object.Truthy(left) {
			return object.FALSE
		}
		return evalTruthyRight(node, env)
	case "||":
		if object.Truthy(left) {
			return object.TRUE
		}
		return evalTruthyRight(node, env)
	}
	right := Eval(node.Right, env)
	if isError(right) {
		return right
	}
	return evalInfix(node.Operator, left, right)
}

func evalTruthyRight(node *ast.InfixExpression, env *object.Environment) object.Object {
	right := Eval(node.Right, env)
	if isError(right) {
		return right
	}
	return object.NativeBoolToBooleanObject(object.Truthy(right))
}

func evalInfix(operator string, left, right object.Object) object.Object {
	switch {
	case operator == "==":
		return object.Equals(left, right)
	case operator == "!=":
		return object.NativeBoolToBooleanObject(!object.Equals(left, right).Value)
	case operator == "+" && (left.Type() == object.STRING || right.Type() == object.STRING):
		return object.String{Value: object.AsString(left) + object.AsString(right)}
	case left.Type() == object.INTEGER && right.Type() == object.INTEGER:
		return evalIntegerInfix(operator, left.(object.Integer).Value, right.(object.Integer).Value)
	case object.IsNumber(left) && object.IsNumber(right):
		return evalMixedInfix(operator, left, right)
	case left.Type() == object.STRING && right.Type() == object.STRING:
		return evalStringInfix(operator, left.(object.String).Value, right.(object.String).Value)
	case left.Type() != right.Type():
		return errorf("type mismatch: %s %s %s", left.Type(), operator, right.Type())
	default:
		return errorf("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalMixedInfix is float arithmetic after promoting both sides.
func evalMixedInfix(operator string, left, right object.Object) object.Object {
	l, err := toFloat(left)
	if err != nil {
		return *err
	}
	r, err := toFloat(right)
	if err != nil {
		return *err
	}
	return evalFloatInfix(operator, l, r)
}

// toFloat promotes a number, refusing integers that float64 can't hold exactly.
func toFloat(o object.Object) (float64, *object.Error) {
	switch o := o.(type) {
	case object.Float:
		return o.Value, nil
	case object.Integer:
		f, err := safecast.Convert[float64](o.Value)
		if err != nil {
			log.LogVf("Integer %d to float: %v", o.Value, err)
			e := errorf("integer %d can't be represented exactly as a float", o.Value)
			return 0, &e
		}
		return f, nil
	}
	e := errorf("not a number: %s", o.Type())
	return 0, &e
}

func evalIntegerInfix(operator string, left, right int64) object.Object {
	switch operator {
	case "+":
		return object.Integer{Value: left + right}
	case "-":
		return object.Integer{Value: left - right}
	case "*":
		return object.Integer{Value: left * right}
	case "/":
		if right == 0 {
			return errorf("division by zero")
		}
		if left%right == 0 {
			return object.Integer{Value: left / right}
		}
		return evalMixedInfix(operator, object.Integer{Value: left}, object.Integer{Value: right})
	case "%":
		if right == 0 {
			return errorf("division by zero")
		}
		return object.Integer{Value: left % right}
	case "<":
		return object.NativeBoolToBooleanObject(left < right)
	case "<=":
		return object.NativeBoolToBooleanObject(left <= right)
	case ">":
		return object.NativeBoolToBooleanObject(left > right)
	case ">=":
		return object.NativeBoolToBooleanObject(left >= right)
	}
	return errorf("unknown operator: INTEGER %s INTEGER", operator)
}

func evalFloatInfix(operator string, left, right float64) object.Object {
	switch operator {
	case "+":
		return object.Float{Value: left + right}
	case "-":
		return object.Float{Value: left - right}
	case "*":
		return object.Float{Value: left * right}
	case "/":
		if right == 0 {
			return errorf("division by zero")
		}
		return object.Float{Value: left / right}
	case "%":
		if right == 0 {
			return errorf("division by zero")
		}
		return object.Float{Value: math.Mod(left, right)}
	case "<":
		return object.NativeBoolToBooleanObject(left < right)
	case "<=":
		return object.NativeBoolToBooleanObject(left <= right)
	case ">":
		return object.NativeBoolToBooleanObject(left > right)
	case ">=":
		return object.NativeBoolToBooleanObject(left >= right)
	}
	return errorf("unknown operator: FLOAT %s FLOAT", operator)
}

func evalStringInfix(operator, left, right string) object.Object {
	switch operator {
	case "<":
		return object.NativeBoolToBooleanObject(left < right)
	case "<=":
		return object.NativeBoolToBooleanObject(left <= right)
	case ">":
		return object.NativeBoolToBooleanObject(left > right)
	case ">=":
		return object.NativeBoolToBooleanObject(left >= right)
	}
	return errorf("unknown operator: STRING %s STRING", operator)
}
