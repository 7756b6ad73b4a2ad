package ir

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/sandramulyana/kotlin/util"
)

// Type is a type as it occurs in a member signature: either a nominal
// class (possibly applied to type arguments) or a reference to a
// generic type-parameter declaration.
type Type interface {
	fmt.Stringer
	Hash() uint64
}

var (
	_ Type = (*ClassType)(nil)
	_ Type = (*ParamRef)(nil)
)

// ClassType is a nominal type. Type arguments are invariant:
// Box<String> is unrelated to Box<Any>.
type ClassType struct {
	Name string
	Args []Type
}

func (t *ClassType) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	return t.Name + "<" + util.JoinString(t.Args, ", ") + ">"
}

func (t *ClassType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("ClassType"))
	_, _ = h.Write([]byte(t.Name))
	arr := make([]byte, 0, 8*len(t.Args))
	for _, arg := range t.Args {
		arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// TypeParameter is a generic-parameter declaration. Identity is the ID:
// occurrences of the same declaration share the same ID.
//
// Bounds are carried through from the source but never verified when
// deciding override compatibility.
type TypeParameter struct {
	ID     uint64
	Name   string
	Bounds []Type
}

// ParamRef is an occurrence of a TypeParameter inside a signature.
type ParamRef struct {
	Param *TypeParameter
}

func (t *ParamRef) String() string {
	return t.Param.Name
}

func (t *ParamRef) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("ParamRef"))
	_, _ = h.Write(binary.LittleEndian.AppendUint64(nil, t.Param.ID))
	return h.Sum64()
}
