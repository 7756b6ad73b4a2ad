package ir

const (
	AnyTypeName     = "Any"
	NothingTypeName = "Nothing"
	UnitTypeName    = "Unit"
	IntTypeName     = "Int"
	FloatTypeName   = "Float"
	StringTypeName  = "String"
	BooleanTypeName = "Boolean"
)

// Builtins is the registry of built-in class types. It is constructed
// explicitly and passed wherever built-ins are needed, rather than
// living as ambient global state, so tests can substitute synthetic
// registries.
type Builtins struct {
	Any     *ClassType
	Nothing *ClassType
	Unit    *ClassType
	Int     *ClassType
	Float   *ClassType
	String  *ClassType
	Boolean *ClassType
}

func NewBuiltins() *Builtins {
	return &Builtins{
		Any:     &ClassType{Name: AnyTypeName},
		Nothing: &ClassType{Name: NothingTypeName},
		Unit:    &ClassType{Name: UnitTypeName},
		Int:     &ClassType{Name: IntTypeName},
		Float:   &ClassType{Name: FloatTypeName},
		String:  &ClassType{Name: StringTypeName},
		Boolean: &ClassType{Name: BooleanTypeName},
	}
}

// All yields every builtin class type, Any first.
func (b *Builtins) All() []*ClassType {
	return []*ClassType{b.Any, b.Nothing, b.Unit, b.Int, b.Float, b.String, b.Boolean}
}
