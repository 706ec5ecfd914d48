package object_test

import (
	"math"
	"slices"
	"testing"

	"mainlang.io/mainlang/object"
)

func TestEquals(t *testing.T) {
	tests := []struct {
		left, right object.Object
		expected    bool
	}{
		{object.Integer{Value: 3}, object.Integer{Value: 3}, true},
		{object.Integer{Value: 3}, object.Float{Value: 3}, true},
		{object.Float{Value: 2.5}, object.Integer{Value: 2}, false},
		{object.String{Value: "a"}, object.String{Value: "a"}, true},
		{object.String{Value: "1"}, object.Integer{Value: 1}, false},
		{object.TRUE, object.TRUE, true},
		{object.TRUE, object.Integer{Value: 1}, false},
		{object.Error{Value: "x"}, object.Error{Value: "x"}, false},
	}
	for _, tt := range tests {
		if got := object.Equals(tt.left, tt.right); got.Value != tt.expected {
			t.Errorf("Equals(%s, %s) = %v, expected %v", tt.left.Inspect(), tt.right.Inspect(), got.Value, tt.expected)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		obj      object.Object
		expected bool
	}{
		{object.TRUE, true},
		{object.FALSE, false},
		{object.Integer{Value: 0}, false},
		{object.Integer{Value: -1}, true},
		{object.Float{Value: 0}, false},
		{object.Float{Value: 0.1}, true},
		{object.String{Value: ""}, false},
		{object.String{Value: "0"}, true},
		{object.String{Value: "Error evaluating expression: x"}, true},
	}
	for _, tt := range tests {
		if got := object.Truthy(tt.obj); got != tt.expected {
			t.Errorf("Truthy(%s) = %v, expected %v", tt.obj.Inspect(), got, tt.expected)
		}
	}
}

func TestAsString(t *testing.T) {
	tests := []struct {
		obj      object.Object
		expected string
	}{
		{object.String{Value: "hello world"}, "hello world"},
		{object.Integer{Value: -42}, "-42"},
		{object.Float{Value: 2.5}, "2.5"},
		{object.Float{Value: 5}, "5"},
		{object.Float{Value: 1e6}, "1000000"},
		{object.Float{Value: 1e21}, "1e+21"},
		{object.Float{Value: 1e-7}, "1e-07"},
		{object.Float{Value: math.Inf(-1)}, "-Inf"},
		{object.TRUE, "true"},
		{object.FALSE, "false"},
	}
	for _, tt := range tests {
		if got := object.AsString(tt.obj); got != tt.expected {
			t.Errorf("AsString(%#v) = %q, expected %q", tt.obj, got, tt.expected)
		}
	}
	if got := (object.String{Value: "a\"b"}).Inspect(); got != `"a\"b"` {
		t.Errorf("String.Inspect() = %s", got)
	}
}

func TestEnvironment(t *testing.T) {
	env := object.NewEnvironment()
	if _, ok := env.Get("x"); ok {
		t.Fatalf("unexpected x in empty environment")
	}
	env.Set("x", object.Integer{Value: 1})
	env.Set("b", object.TRUE)
	env.Set("x", object.String{Value: "last"})
	v, ok := env.Get("x")
	if !ok || v != (object.String{Value: "last"}) {
		t.Errorf("expected last write to win, got %v %v", v, ok)
	}
	if env.Len() != 2 {
		t.Errorf("expected 2 variables, got %d", env.Len())
	}
	if env.NumSet() != 3 {
		t.Errorf("expected 3 sets, got %d", env.NumSet())
	}
	if names := env.Names(); !slices.Equal(names, []string{"b", "x"}) {
		t.Errorf("unexpected names %v", names)
	}
}

func TestTypeString(t *testing.T) {
	if (object.Float{}).Type().String() != "FLOAT" {
		t.Errorf("unexpected %s", object.Float{}.Type())
	}
}
