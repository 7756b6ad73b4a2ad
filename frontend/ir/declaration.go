package ir

import (
	"fmt"
	"reflect"
)

// Member is a declaration that can participate in overriding.
// It is a closed union: Function and Property are the only variants,
// and every projection below switches exhaustively so a new variant
// cannot be silently mishandled.
type Member interface {
	MemberName() string
	isMember()
}

var (
	_ Member = (*Function)(nil)
	_ Member = (*Property)(nil)
)

type ValueParameter struct {
	Name string
	Type Type
}

type Function struct {
	Name string
	// Receiver is nil when the function declares no receiver parameter
	Receiver    *ValueParameter
	ValueParams []*ValueParameter
	TypeParams  []*TypeParameter
	ReturnType  Type
	IsSuspend   bool
}

func (f *Function) MemberName() string { return f.Name }
func (*Function) isMember()            {}

// Getter carries the signature a Property exposes to override checks.
type Getter struct {
	// Receiver is nil when the getter declares no receiver parameter
	Receiver   *ValueParameter
	TypeParams []*TypeParameter
	ReturnType Type
}

// Property is represented solely through its getter; a Property with a
// nil Getter is an invalid input to every projection in this package.
type Property struct {
	Name   string
	Getter *Getter
}

func (p *Property) MemberName() string { return p.Name }
func (*Property) isMember()            {}

// EffectiveParameters projects a member's ordered parameter types, with
// the receiver parameter, when present, logically prepended. A property
// never carries ordinary value parameters, so its effective parameters
// are its getter's receiver or nothing.
func EffectiveParameters(m Member) []Type {
	switch m := m.(type) {
	case *Function:
		params := make([]Type, 0, len(m.ValueParams)+1)
		if m.Receiver != nil {
			params = append(params, m.Receiver.Type)
		}
		for _, p := range m.ValueParams {
			params = append(params, p.Type)
		}
		return params
	case *Property:
		if m.Getter.Receiver != nil {
			return []Type{m.Getter.Receiver.Type}
		}
		return nil
	default:
		panic(fmt.Sprintf("unexpected member %s", reflect.TypeOf(m)))
	}
}

// TypeParametersOf projects a member's generic parameter declarations;
// for a property they are taken from its getter.
func TypeParametersOf(m Member) []*TypeParameter {
	switch m := m.(type) {
	case *Function:
		return m.TypeParams
	case *Property:
		return m.Getter.TypeParams
	default:
		panic(fmt.Sprintf("unexpected member %s", reflect.TypeOf(m)))
	}
}

// ReturnTypeOf projects a member's return type; for a property it is
// the getter's return type.
func ReturnTypeOf(m Member) Type {
	switch m := m.(type) {
	case *Function:
		return m.ReturnType
	case *Property:
		return m.Getter.ReturnType
	default:
		panic(fmt.Sprintf("unexpected member %s", reflect.TypeOf(m)))
	}
}
