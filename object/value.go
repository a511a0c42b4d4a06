/*
File : mylang/object/value.go

Package object defines the runtime value model (Value — Literal or
Function) and the environment stack that stores bindings for it. It
deliberately knows nothing about how a Function is called: Callable
dispatch lives in the interpreter package, which depends on object,
not the other way around — mirroring the reference implementation's
split between its core crate (values, environment) and its
interpreter crate (the Callable trait and its implementations).
*/
package object

// Value is anything that can be bound to a name: a Literal
// (String/Number/Bool/Null, from the ast package) or a Function-like
// callable defined in the interpreter package. Both satisfy this
// interface structurally — object never imports either concrete type.
type Value interface {
	// Kind names the runtime type: "String", "Number", "Bool", "Null"
	// or "Function" — the exact vocabulary typeof() reports.
	Kind() string
	// Truthy implements this language's truthiness coercion.
	Truthy() bool
	// Display renders the value's canonical string form.
	Display() string
}
