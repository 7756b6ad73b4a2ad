// Package override decides whether one member declaration may legally
// override another. It answers the compatibility question for a single
// super/sub pair; choosing which declaration actually gets overridden
// among several candidates is the caller's business.
package override

import (
	"fmt"
	"reflect"

	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/sandramulyana/kotlin/frontend/types"
)

// IsOverridableBy reports whether sub may override super, without
// checking return types.
func IsOverridableBy(ctx *types.TypeCtx, super, sub ir.Member) bool {
	_, ok := CheckOverridability(ctx, super, sub, false).(Overridable)
	return ok
}

// CheckOverridability runs the full decision pipeline: structural gate,
// generic alignment, then signature equivalence. Each stage returns as
// soon as it fails, so the first mismatch found determines the verdict.
//
// Return types are only compared when checkReturnType is set; the
// comparison is a subtype check, so covariant returns are accepted.
func CheckOverridability(ctx *types.TypeCtx, super, sub ir.Member, checkReturnType bool) Verdict {
	if problem := basicOverridabilityProblem(super, sub); problem != nil {
		return *problem
	}

	superTypeParams := ir.TypeParametersOf(super)
	subTypeParams := ir.TypeParametersOf(sub)
	if len(superTypeParams) != len(subTypeParams) {
		return Incompatible{Reason: "Type parameter number mismatch"}
	}
	// corresponding type parameters are paired positionally; their
	// bounds are not checked against each other
	axioms := ctx.NewAxioms(superTypeParams, subTypeParams)

	superParams := ir.EffectiveParameters(super)
	subParams := ir.EffectiveParameters(sub)
	for i := range subParams {
		// exact equality, not subtyping: overriding never permits
		// parameter-type variance
		if !ctx.EqualTypes(axioms, subParams[i], superParams[i]) {
			return Incompatible{Reason: "Value parameter type mismatch"}
		}
	}

	if superFn, ok := super.(*ir.Function); ok {
		if subFn, ok := sub.(*ir.Function); ok && superFn.IsSuspend != subFn.IsSuspend {
			return Conflict{Reason: "Incompatible suspendability"}
		}
	}

	if checkReturnType && !ctx.IsSubtypeOf(axioms, ir.ReturnTypeOf(sub), ir.ReturnTypeOf(super)) {
		return Conflict{Reason: "Return type mismatch"}
	}

	return Overridable{}
}

// basicOverridabilityProblem is the cheap, purely structural gate:
// member kind, name, receiver presence, value-parameter count. A nil
// result means the pair proceeds to signature comparison.
func basicOverridabilityProblem(super, sub ir.Member) *Incompatible {
	switch super := super.(type) {
	case *ir.Function:
		subFn, ok := sub.(*ir.Function)
		if !ok {
			return &Incompatible{Reason: "Member kind mismatch"}
		}
		if super.Name != subFn.Name {
			return &Incompatible{Reason: "Name mismatch"}
		}
		if (super.Receiver == nil) != (subFn.Receiver == nil) {
			return &Incompatible{Reason: "Receiver presence mismatch"}
		}
		// receivers are excluded from this count; their presence was
		// just checked on its own
		if len(super.ValueParams) != len(subFn.ValueParams) {
			return &Incompatible{Reason: "Value parameter number mismatch"}
		}
		return nil
	case *ir.Property:
		subProp, ok := sub.(*ir.Property)
		if !ok {
			return &Incompatible{Reason: "Member kind mismatch"}
		}
		if super.Name != subProp.Name {
			return &Incompatible{Reason: "Name mismatch"}
		}
		if (super.Getter.Receiver == nil) != (subProp.Getter.Receiver == nil) {
			return &Incompatible{Reason: "Receiver presence mismatch"}
		}
		return nil
	default:
		// being asked about something that is neither a function nor a
		// property is a bug in the caller, not a verdict
		panic(fmt.Sprintf("unexpected member %s", reflect.TypeOf(super)))
	}
}
