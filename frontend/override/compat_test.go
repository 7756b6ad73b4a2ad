package override_test

import (
	"fmt"
	"testing"

	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/sandramulyana/kotlin/frontend/override"
	"github.com/sandramulyana/kotlin/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCtx(t *testing.T) (*types.TypeCtx, *ir.Builtins) {
	t.Helper()
	builtins := ir.NewBuiltins()
	ctx := types.NewTypeCtx(builtins)
	require.NoError(t, ctx.DefineClass("Number", nil, nil))
	return ctx, builtins
}

func simpleFn(name string, params []ir.Type, ret ir.Type) *ir.Function {
	fn := &ir.Function{Name: name, ReturnType: ret}
	for i, param := range params {
		fn.ValueParams = append(fn.ValueParams, &ir.ValueParameter{
			Name: fmt.Sprintf("p%d", i),
			Type: param,
		})
	}
	return fn
}

func TestReflexivity(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("foo", []ir.Type{builtins.Int, builtins.String}, builtins.Unit)
	sub := simpleFn("foo", []ir.Type{builtins.Int, builtins.String}, builtins.Unit)

	assert.True(t, override.IsOverridableBy(ctx, super, sub))
	for range 10 {
		verdict := override.CheckOverridability(ctx, super, sub, true)
		assert.Equal(t, override.Overridable{}, verdict)
	}
}

func TestKindSeparation(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	fn := simpleFn("size", nil, builtins.Int)
	prop := &ir.Property{Name: "size", Getter: &ir.Getter{ReturnType: builtins.Int}}

	want := override.Incompatible{Reason: "Member kind mismatch"}
	assert.Equal(t, want, override.CheckOverridability(ctx, fn, prop, true))
	assert.Equal(t, want, override.CheckOverridability(ctx, prop, fn, true))
}

func TestNameMismatch(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
	sub := simpleFn("bar", []ir.Type{builtins.Int}, builtins.Unit)

	verdict := override.CheckOverridability(ctx, super, sub, false)
	assert.Equal(t, override.Incompatible{Reason: "Name mismatch"}, verdict)
}

func TestValueParameterNumberMismatch(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
	sub := simpleFn("foo", []ir.Type{builtins.Int, builtins.Int}, builtins.Unit)

	verdict := override.CheckOverridability(ctx, super, sub, false)
	assert.Equal(t, override.Incompatible{Reason: "Value parameter number mismatch"}, verdict)
}

func TestReceiverPresenceMismatch(t *testing.T) {
	ctx, builtins := newTestCtx(t)

	t.Run("function", func(t *testing.T) {
		super := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
		sub := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
		sub.Receiver = &ir.ValueParameter{Name: "<receiver>", Type: builtins.String}

		verdict := override.CheckOverridability(ctx, super, sub, false)
		assert.Equal(t, override.Incompatible{Reason: "Receiver presence mismatch"}, verdict)
	})

	t.Run("property", func(t *testing.T) {
		super := &ir.Property{Name: "size", Getter: &ir.Getter{
			Receiver:   &ir.ValueParameter{Name: "<receiver>", Type: builtins.String},
			ReturnType: builtins.Int,
		}}
		sub := &ir.Property{Name: "size", Getter: &ir.Getter{ReturnType: builtins.Int}}

		verdict := override.CheckOverridability(ctx, super, sub, false)
		assert.Equal(t, override.Incompatible{Reason: "Receiver presence mismatch"}, verdict)
	})
}

// overriding requires exact parameter-type equality: a subtype in
// parameter position is still a mismatch
func TestParameterTypeExactness(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
	sub := simpleFn("foo", []ir.Type{builtins.Any}, builtins.Unit)

	require.True(t, ctx.IsSubtypeOf(nil, builtins.Int, builtins.Any))
	verdict := override.CheckOverridability(ctx, super, sub, false)
	assert.Equal(t, override.Incompatible{Reason: "Value parameter type mismatch"}, verdict)
}

func TestReceiverTypeMismatch(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
	super.Receiver = &ir.ValueParameter{Name: "<receiver>", Type: builtins.String}
	sub := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
	sub.Receiver = &ir.ValueParameter{Name: "<receiver>", Type: builtins.Int}

	// the receiver participates as the first effective parameter
	verdict := override.CheckOverridability(ctx, super, sub, false)
	assert.Equal(t, override.Incompatible{Reason: "Value parameter type mismatch"}, verdict)
}

func TestSuspendConflict(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("stop", nil, builtins.Unit)
	super.IsSuspend = true
	sub := simpleFn("stop", nil, builtins.Unit)

	verdict := override.CheckOverridability(ctx, super, sub, true)
	assert.Equal(t, override.Conflict{Reason: "Incompatible suspendability"}, verdict)
	assert.False(t, override.IsOverridableBy(ctx, super, sub))
}

func TestCovariantReturn(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("get", nil, builtins.Any)
	sub := simpleFn("get", nil, builtins.String)

	// without a return-type check the pair is plainly overridable
	assert.True(t, override.IsOverridableBy(ctx, super, sub))
	// with it, a covariant return is still accepted
	assert.Equal(t, override.Overridable{}, override.CheckOverridability(ctx, super, sub, true))

	// the reverse direction widens the return type, which is an error
	verdict := override.CheckOverridability(ctx, sub, super, true)
	assert.Equal(t, override.Conflict{Reason: "Return type mismatch"}, verdict)
}

func TestReturnTypeOnlyCheckedWhenRequested(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("get", nil, builtins.String)
	sub := simpleFn("get", nil, builtins.Any)

	assert.Equal(t, override.Overridable{}, override.CheckOverridability(ctx, super, sub, false))
	assert.True(t, override.IsOverridableBy(ctx, super, sub))
}

func TestTypeParameterNumberMismatch(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)
	super.TypeParams = []*ir.TypeParameter{{ID: 1, Name: "T"}}
	sub := simpleFn("foo", []ir.Type{builtins.Int}, builtins.Unit)

	// fails before any parameter types are compared, even though they
	// would all match
	verdict := override.CheckOverridability(ctx, super, sub, false)
	assert.Equal(t, override.Incompatible{Reason: "Type parameter number mismatch"}, verdict)
}

func TestTypeParametersPairedPositionally(t *testing.T) {
	ctx, builtins := newTestCtx(t)

	superT := &ir.TypeParameter{ID: 1, Name: "T"}
	super := simpleFn("foo", []ir.Type{&ir.ParamRef{Param: superT}}, builtins.Unit)
	super.TypeParams = []*ir.TypeParameter{superT}

	subR := &ir.TypeParameter{ID: 2, Name: "R"}
	sub := simpleFn("foo", []ir.Type{&ir.ParamRef{Param: subR}}, builtins.Unit)
	sub.TypeParams = []*ir.TypeParameter{subR}

	assert.Equal(t, override.Overridable{}, override.CheckOverridability(ctx, super, sub, true))

	// swapping two pairings must break the equivalence
	superU := &ir.TypeParameter{ID: 3, Name: "U"}
	super2 := simpleFn("bar", []ir.Type{&ir.ParamRef{Param: superT}, &ir.ParamRef{Param: superU}}, builtins.Unit)
	super2.TypeParams = []*ir.TypeParameter{superT, superU}

	subS := &ir.TypeParameter{ID: 4, Name: "S"}
	sub2 := simpleFn("bar", []ir.Type{&ir.ParamRef{Param: subS}, &ir.ParamRef{Param: subR}}, builtins.Unit)
	sub2.TypeParams = []*ir.TypeParameter{subR, subS}

	verdict := override.CheckOverridability(ctx, super2, sub2, false)
	assert.Equal(t, override.Incompatible{Reason: "Value parameter type mismatch"}, verdict)
}

func TestPropertyOverride(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	super := &ir.Property{Name: "size", Getter: &ir.Getter{ReturnType: builtins.Any}}
	sub := &ir.Property{Name: "size", Getter: &ir.Getter{ReturnType: builtins.Int}}

	assert.True(t, override.IsOverridableBy(ctx, super, sub))
	assert.Equal(t, override.Overridable{}, override.CheckOverridability(ctx, super, sub, true))

	verdict := override.CheckOverridability(ctx, sub, super, true)
	assert.Equal(t, override.Conflict{Reason: "Return type mismatch"}, verdict)
}

func TestMalformedMemberPanics(t *testing.T) {
	ctx, builtins := newTestCtx(t)
	sub := simpleFn("foo", nil, builtins.Unit)

	assert.Panics(t, func() {
		override.CheckOverridability(ctx, nil, sub, false)
	})
}
