/*
File    : lisp-mix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexically nested symbol-to-value
// binding table the evaluator reads and writes against. It is the sole
// mutable shared state in lisp-mix: a closure and the scope it was
// defined in share the same *Environment, and a define executed through
// any alias is visible through all of them.
package environment

import (
	"sync"

	"github.com/akashmaji946/lisp-mix/value"
)

// Environment is a local binding table plus an optional parent. Lookup
// walks the parent chain; Set always writes into the receiver's own
// table, never into a parent's.
//
// The table is guarded by a mutex rather than left to the caller because
// a Lambda's captured Environment can be read and written through every
// alias that holds it — including, for a recursive definition, the very
// Lambda the Environment is about to store.
type Environment struct {
	mu     sync.RWMutex
	table  map[string]value.Value
	parent value.Env
}

// New creates an empty root environment with no parent.
func New() *Environment {
	return &Environment{table: make(map[string]value.Value)}
}

// Extend creates an empty environment whose lookups fall through to
// parent once the new environment's own table is exhausted. parent is
// typed as value.Env rather than *Environment so a Lambda's captured
// scope (itself a value.Env) can be extended without value importing
// environment.
func Extend(parent value.Env) *Environment {
	return &Environment{table: make(map[string]value.Value), parent: parent}
}

// Get resolves name by checking the local table first, then recursing
// into the parent chain. The zero value and false are returned when the
// name is bound nowhere in the chain; the caller (the evaluator) is
// responsible for turning that into an Unbound symbol/function error —
// Get itself never falls back to a default.
func (e *Environment) Get(name string) (value.Value, bool) {
	e.mu.RLock()
	v, ok := e.table[name]
	e.mu.RUnlock()
	if ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Set writes or overwrites a binding in the receiver's own table only.
// A define of an existing name in the same scope silently overwrites it.
func (e *Environment) Set(name string, v value.Value) {
	e.mu.Lock()
	e.table[name] = v
	e.mu.Unlock()
}

// Merge copies every binding from other's local table into the
// receiver's local table. It is used by let to fold its temporary
// bindings environment into the scope the body evaluates in.
func (e *Environment) Merge(other *Environment) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range other.table {
		e.table[k] = v
	}
}
