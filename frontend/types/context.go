package types

import (
	set "github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/sandramulyana/kotlin/util/hset"
)

type typeName = string

// classInfo is what TypeCtx stores about each known class.
type classInfo struct {
	name       typeName
	typeParams []*ir.TypeParameter
	// parents is the transitive closure of supertype names
	parents *set.Set[typeName]
}

// typeHasher lets ir.Type values live in hash-keyed sets.
// Two types are considered the same element when their hashes agree.
type typeHasher struct{}

func (typeHasher) Hash(t ir.Type) uint32   { return uint32(t.Hash() ^ t.Hash()>>32) }
func (typeHasher) Equal(a, b ir.Type) bool { return a.Hash() == b.Hash() }

// TypeCtx owns the built-in type registry and the class hierarchy that
// equality and subtyping judgements run against. It is mutated only
// while classes are being defined; checks never modify it.
type TypeCtx struct {
	builtins *ir.Builtins
	classes  map[typeName]*classInfo
}

func NewTypeCtx(builtins *ir.Builtins) *TypeCtx {
	ctx := &TypeCtx{
		builtins: builtins,
		classes:  make(map[typeName]*classInfo),
	}
	for _, b := range builtins.All() {
		parents := set.New[typeName](1)
		if b.Name != builtins.Any.Name {
			parents.Insert(builtins.Any.Name)
		}
		ctx.classes[b.Name] = &classInfo{name: b.Name, parents: parents}
	}
	return ctx
}

func (ctx *TypeCtx) Builtins() *ir.Builtins { return ctx.builtins }

func (ctx *TypeCtx) HasClass(name typeName) bool {
	_, ok := ctx.classes[name]
	return ok
}

// Parents returns the transitive supertype-name closure of name,
// excluding name itself.
func (ctx *TypeCtx) Parents(name typeName) (*set.Set[typeName], bool) {
	info, ok := ctx.classes[name]
	if !ok {
		return nil, false
	}
	return info.parents, true
}

// DefineClass records a class and its declared supertypes. Supertypes
// must already be defined; the stored parent set is the transitive
// closure, so subtyping later needs no traversal.
func (ctx *TypeCtx) DefineClass(name typeName, typeParams []*ir.TypeParameter, supertypes []ir.Type) error {
	if _, ok := ctx.classes[name]; ok {
		return errors.Errorf("class %s is already defined", name)
	}
	parents := set.New[typeName](len(supertypes) + 1)
	parents.Insert(ctx.builtins.Any.Name)

	seen := hset.Empty[ir.Type](typeHasher{})
	for _, st := range supertypes {
		if seen.Contains(st) {
			continue
		}
		seen.Add(st)
		stClass, ok := st.(*ir.ClassType)
		if !ok {
			return errors.Errorf("class %s: supertype %s is not a class type", name, st)
		}
		stInfo, ok := ctx.classes[stClass.Name]
		if !ok {
			return errors.Errorf("class %s: undefined supertype %s", name, stClass.Name)
		}
		parents.Insert(stClass.Name)
		parents.InsertSlice(stInfo.parents.Slice())
	}
	ctx.classes[name] = &classInfo{
		name:       name,
		typeParams: typeParams,
		parents:    parents,
	}
	return nil
}
