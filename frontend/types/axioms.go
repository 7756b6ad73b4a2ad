package types

import (
	"github.com/pkg/errors"
	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/sandramulyana/kotlin/util"
)

// Axioms pairs the i-th type parameter of one declaration with the i-th
// type parameter of another, so equality judgements treat occurrences
// of either as interchangeable. Build one per comparison and discard
// it; it owns nothing beyond the pairing and the context it came from.
//
// Bound compatibility between paired parameters is not checked here.
type Axioms struct {
	ctx   *TypeCtx
	pairs []util.Pair[uint64, uint64]
}

// NewAxioms builds the positional pairing. The caller must have
// established that both lists have the same length.
func (ctx *TypeCtx) NewAxioms(superParams, subParams []*ir.TypeParameter) *Axioms {
	if len(superParams) != len(subParams) {
		panic(errors.Errorf("axioms over %d and %d type parameters", len(superParams), len(subParams)))
	}
	pairs := make([]util.Pair[uint64, uint64], len(superParams))
	for i := range superParams {
		pairs[i] = util.NewPair(superParams[i].ID, subParams[i].ID)
	}
	return &Axioms{ctx: ctx, pairs: pairs}
}

// Paired reports whether fst and snd are pairwise-equivalent under the
// axioms, in either direction. A nil Axioms holds no pairings.
func (a *Axioms) Paired(fst, snd *ir.TypeParameter) bool {
	if a == nil {
		return false
	}
	for _, p := range a.pairs {
		if p.Fst == fst.ID && p.Snd == snd.ID {
			return true
		}
		if p.Fst == snd.ID && p.Snd == fst.ID {
			return true
		}
	}
	return false
}
