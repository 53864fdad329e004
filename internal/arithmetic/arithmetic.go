// Package arithmetic holds the pure binary operations served by the API.
package arithmetic

import "math"

// Func is a binary operation over float64 operands.
type Func func(a, b float64) float64

// Operation binds a Func to the route it is served on.
type Operation struct {
	Name string
	Path string
	Func Func
}

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Diff returns the absolute difference between a and b.
func Diff(a, b float64) float64 {
	return math.Abs(a - b)
}

// Operations returns the dispatch table in routing order. Each call returns
// a fresh slice.
func Operations() []Operation {
	return []Operation{
		{Name: "add", Path: "/add", Func: Add},
		{Name: "subtract", Path: "/subtract", Func: Subtract},
		{Name: "multy", Path: "/multy", Func: Multiply},
		{Name: "diff", Path: "/diff", Func: Diff},
	}
}

// Lookup finds an operation by name.
func Lookup(name string) (Operation, bool) {
	for _, op := range Operations() {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
