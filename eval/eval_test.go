package eval_test

import (
	"errors"
	"strings"
	"testing"

	"mainlang.io/mainlang/eval"
	"mainlang.io/mainlang/object"
	"mainlang.io/mainlang/parser"
)

func testEnv() *object.Environment {
	env := object.NewEnvironment()
	env.Set("x", object.Integer{Value: 5})
	env.Set("half", object.Float{Value: 0.5})
	env.Set("name", object.String{Value: "bob"})
	env.Set("yes", object.TRUE)
	return env
}

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	node, errs := parser.Parse(input)
	if len(errs) > 0 {
		t.Fatalf("parser has %d error(s): %v", len(errs), errs)
	}
	return eval.Eval(node, testEnv())
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"+5", 5},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"6 / 3", 2},
		{"17 % 5", 2},
		{"-21 % 5", -1},
		{"x * x", 25},
		{"0x10 + 0b11", 19},
	}

	for i, tt := range tests {
		evaluated := testEval(t, tt.input)
		if !testIntegerObject(t, evaluated, tt.expected) {
			t.Logf("test %d input: %s failed integer %d", i, tt.input, tt.expected)
		}
	}
}

func testIntegerObject(t *testing.T, obj object.Object, expected int64) bool {
	t.Helper()
	result, ok := obj.(object.Integer)
	if !ok {
		t.Errorf("object is not Integer. got=%T (%+v)", obj, obj)
		return false
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%d, want=%d",
			result.Value, expected)
		return false
	}
	return true
}

func TestEvalFloatExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"7 / 2", 3.5},
		{"-7 / 2", -3.5},
		{"1.5 + 1", 2.5},
		{"x * half", 2.5},
		{"1e3 - 1", 999},
		{"5.5 % 2", 1.5},
		{"-half", -0.5},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		result, ok := evaluated.(object.Float)
		if !ok {
			t.Errorf("%q: object is not Float. got=%T (%+v)", tt.input, evaluated, evaluated)
			continue
		}
		if result.Value != tt.expected {
			t.Errorf("%q: got=%g, want=%g", tt.input, result.Value, tt.expected)
		}
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 <= 1", true},
		{"2 >= 3", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 1.0", true},
		{"0.5 == half", true},
		{"true == true", true},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{`"a" < "b"`, true},
		{`name == "bob"`, true},
		{`name >= "bobby"`, false},
		{`"1" == 1`, false},
		{"!true", false},
		{"!0", true},
		{`!""`, true},
		{"!x", false},
		{"yes && x > 1", true},
		{"false && undefined", false}, // short circuit: right side never evaluated.
		{"true || undefined", true},
		{"0 || 3", true},
		{"1 && 0", false},
		{"1.5 > 1", true},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		result, ok := evaluated.(object.Boolean)
		if !ok {
			t.Errorf("%q: object is not Boolean. got=%T (%+v)", tt.input, evaluated, evaluated)
			continue
		}
		if result.Value != tt.expected {
			t.Errorf("%q: got=%t, want=%t", tt.input, result.Value, tt.expected)
		}
	}
}

func TestEvalStringExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello" + " " + name`, "hello bob"},
		{`"n=" + x`, "n=5"},
		{`x + "!"`, "5!"},
		{`"half=" + half`, "half=0.5"},
		{`"ok: " + yes`, "ok: true"},
		{`"a\tb"`, "a\tb"},
		{"``", ""},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		result, ok := evaluated.(object.String)
		if !ok {
			t.Errorf("%q: object is not String. got=%T (%+v)", tt.input, evaluated, evaluated)
			continue
		}
		if result.Value != tt.expected {
			t.Errorf("%q: got=%q, want=%q", tt.input, result.Value, tt.expected)
		}
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input           string
		expectedMessage string
	}{
		{"y", "identifier not found: y"},
		{"x + y", "identifier not found: y"},
		{"5 + true", "type mismatch: INTEGER + BOOLEAN"},
		{"true + false", "unknown operator: BOOLEAN + BOOLEAN"},
		{"-true", "unknown operator: -BOOLEAN"},
		{`+"a"`, "unknown operator: +STRING"},
		{`"a" - "b"`, "unknown operator: STRING - STRING"},
		{`"a" * 2`, "type mismatch: STRING * INTEGER"},
		{"true < false", "unknown operator: BOOLEAN < BOOLEAN"},
		{"1 / 0", "division by zero"},
		{"1 % 0", "division by zero"},
		{"1.5 / 0", "division by zero"},
		{"yes && (1 / 0)", "division by zero"},
		{"9007199254740993 + 0.5", "integer 9007199254740993 can't be represented exactly as a float"},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		errObj, ok := evaluated.(object.Error)
		if !ok {
			t.Errorf("%q: no error object returned. got=%T(%+v)", tt.input, evaluated, evaluated)
			continue
		}
		if errObj.Value != tt.expectedMessage {
			t.Errorf("%q: wrong error message. expected=%q, got=%q", tt.input, tt.expectedMessage, errObj.Value)
		}
	}
}

func TestEvalExpression(t *testing.T) {
	env := testEnv()
	res, err := eval.EvalExpression("x + 2 * 3", env)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res != (object.Integer{Value: 11}) {
		t.Errorf("got %v", res)
	}
	_, err = eval.EvalExpression("missing", env)
	var objErr object.Error
	if !errors.As(err, &objErr) || objErr.Value != "identifier not found: missing" {
		t.Errorf("expected object.Error, got %#v", err)
	}
	_, err = eval.EvalExpression("1 +", env)
	if !errors.Is(err, eval.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	res, err = eval.EvalExpression("", env)
	if err != nil || res != (object.String{}) {
		t.Errorf("empty expression: got %v, %v", res, err)
	}
}

func TestEvaluateNeverFails(t *testing.T) {
	env := testEnv()
	before := env.NumSet()
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "Error evaluating expression: identifier not found: hello"},
		{"1 / 0", "Error evaluating expression: division by zero"},
		{"(1", "Error evaluating expression: parsing error: expected RPAREN, got end of expression instead at column 3"},
		{"x = 3", `Error evaluating expression: parsing error: unexpected illegal "=" at column 3`},
		{"x + 1", "6"},
	}
	for _, tt := range tests {
		got := eval.Evaluate(tt.input, env)
		if s := object.AsString(got); s != tt.expected {
			t.Errorf("Evaluate(%q) = %q, expected %q", tt.input, s, tt.expected)
		}
	}
	if env.NumSet() != before {
		t.Errorf("evaluation mutated the variable table")
	}
	if v, _ := env.Get("x"); v != (object.Integer{Value: 5}) {
		t.Errorf("x changed to %v", v)
	}
	if !strings.HasPrefix(eval.ErrorValue(errors.New("boom")).Value, eval.ErrorPrefix) {
		t.Errorf("ErrorValue lost the prefix")
	}
}
