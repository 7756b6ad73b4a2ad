package ir_test

import (
	"testing"

	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveParametersOrdering(t *testing.T) {
	builtins := ir.NewBuiltins()
	fn := &ir.Function{
		Name:     "f",
		Receiver: &ir.ValueParameter{Name: "<receiver>", Type: builtins.String},
		ValueParams: []*ir.ValueParameter{
			{Name: "p0", Type: builtins.Int},
			{Name: "p1", Type: builtins.Boolean},
		},
		ReturnType: builtins.Unit,
	}

	params := ir.EffectiveParameters(fn)
	require.Len(t, params, 3)
	assert.Equal(t, builtins.String, params[0], "receiver comes first")
	assert.Equal(t, builtins.Int, params[1])
	assert.Equal(t, builtins.Boolean, params[2])

	fn.Receiver = nil
	assert.Len(t, ir.EffectiveParameters(fn), 2)
}

func TestPropertyProjectsThroughGetter(t *testing.T) {
	builtins := ir.NewBuiltins()
	elem := &ir.TypeParameter{ID: 7, Name: "T"}
	prop := &ir.Property{Name: "p", Getter: &ir.Getter{
		Receiver:   &ir.ValueParameter{Name: "<receiver>", Type: builtins.Int},
		TypeParams: []*ir.TypeParameter{elem},
		ReturnType: builtins.String,
	}}

	assert.Equal(t, []ir.Type{builtins.Int}, ir.EffectiveParameters(prop))
	assert.Equal(t, []*ir.TypeParameter{elem}, ir.TypeParametersOf(prop))
	assert.Equal(t, ir.Type(builtins.String), ir.ReturnTypeOf(prop))

	prop.Getter.Receiver = nil
	assert.Empty(t, ir.EffectiveParameters(prop))
}

func TestTypeStringAndHash(t *testing.T) {
	builtins := ir.NewBuiltins()
	elem := &ir.TypeParameter{ID: 1, Name: "T"}
	box := &ir.ClassType{Name: "Box", Args: []ir.Type{&ir.ParamRef{Param: elem}, builtins.Int}}

	assert.Equal(t, "Box<T, Int>", box.String())

	same := &ir.ClassType{Name: "Box", Args: []ir.Type{&ir.ParamRef{Param: elem}, builtins.Int}}
	assert.Equal(t, box.Hash(), same.Hash())

	other := &ir.ClassType{Name: "Box", Args: []ir.Type{builtins.Int, &ir.ParamRef{Param: elem}}}
	assert.NotEqual(t, box.Hash(), other.Hash())
}
