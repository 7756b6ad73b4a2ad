package types

import (
	"fmt"
	"reflect"

	"github.com/sandramulyana/kotlin/frontend/ir"
)

// EqualTypes is symmetric structural equality modulo the axioms in ax,
// which may be nil. Type arguments are invariant, so equality recurses
// into them; it never degrades to subtyping.
func (ctx *TypeCtx) EqualTypes(ax *Axioms, a, b ir.Type) bool {
	switch a := a.(type) {
	case *ir.ParamRef:
		b, ok := b.(*ir.ParamRef)
		if !ok {
			return false
		}
		return a.Param.ID == b.Param.ID || ax.Paired(a.Param, b.Param)
	case *ir.ClassType:
		b, ok := b.(*ir.ClassType)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !ctx.EqualTypes(ax, a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unexpected type %s", reflect.TypeOf(a)))
	}
}

// IsSubtypeOf decides sub <: super modulo the axioms in ax. It is
// reflexive (via EqualTypes), Nothing is the bottom of the lattice and
// Any the top; otherwise the judgement is nominal over the transitive
// supertype closure stored in ctx.
//
// A parameterized supertype is only related by erased name: Derived
// <: Box<T> is never concluded for distinct classes, because the
// instantiation the subclass inherits is not tracked here.
func (ctx *TypeCtx) IsSubtypeOf(ax *Axioms, sub, super ir.Type) bool {
	if ctx.EqualTypes(ax, sub, super) {
		return true
	}
	subClass, subIsClass := sub.(*ir.ClassType)
	superClass, superIsClass := super.(*ir.ClassType)
	if subIsClass && subClass.Name == ctx.builtins.Nothing.Name {
		return true
	}
	if superIsClass && superClass.Name == ctx.builtins.Any.Name {
		return true
	}
	if !subIsClass || !superIsClass {
		// a type-parameter occurrence only relates to another type via
		// equality; bounds are not consulted
		return false
	}
	parents, ok := ctx.Parents(subClass.Name)
	if !ok {
		return false
	}
	return parents.Contains(superClass.Name) && len(superClass.Args) == 0
}
