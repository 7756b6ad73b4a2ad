package hierarchy

import (
	"fmt"
	"os"
	"strings"

	set "github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/sandramulyana/kotlin/frontend/kterr"
	"github.com/sandramulyana/kotlin/frontend/types"
	"gopkg.in/yaml.v3"
)

type fileSchema struct {
	Classes []classSchema `yaml:"classes"`
}

type classSchema struct {
	Name string `yaml:"name"`
	// entries are "T" or "T : Bound"
	TypeParameters []string       `yaml:"typeParameters"`
	Supertypes     []string       `yaml:"supertypes"`
	Members        []memberSchema `yaml:"members"`
}

// memberSchema is either a function (Function non-empty) or a property
// (Property non-empty), never both.
type memberSchema struct {
	Function       string   `yaml:"function"`
	Property       string   `yaml:"property"`
	TypeParameters []string `yaml:"typeParameters"`
	Receiver       string   `yaml:"receiver"`
	Parameters     []string `yaml:"parameters"`
	Returns        string   `yaml:"returns"`
	Suspend        bool     `yaml:"suspend"`
	Type           string   `yaml:"type"`
}

// Load reads a hierarchy description file. IO and YAML syntax problems
// come back as the error; semantic problems (duplicate classes,
// unknown types and the like) accumulate in the returned hierarchy's
// Errors.
func Load(path string) (*Hierarchy, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return Decode(src)
}

func Decode(src []byte) (*Hierarchy, error) {
	var file fileSchema
	if err := yaml.Unmarshal(src, &file); err != nil {
		return nil, errors.Wrap(err, "parsing hierarchy description")
	}
	l := &loader{
		h: &Hierarchy{
			byName: make(map[string]*Class),
			ctx:    types.NewTypeCtx(ir.NewBuiltins()),
		},
		schemas: make(map[string]*classSchema),
	}
	l.loadAll(file.Classes)
	return l.h, nil
}

type loader struct {
	h           *Hierarchy
	schemas     map[string]*classSchema
	nextParamID uint64
}

func (l *loader) loadAll(classes []classSchema) {
	var order []string
	for i := range classes {
		schema := &classes[i]
		if _, dup := l.schemas[schema.Name]; dup || l.h.ctx.HasClass(schema.Name) {
			l.h.errs = l.h.errs.With(kterr.New(kterr.NewDuplicateClass{Name: schema.Name}))
			continue
		}
		l.schemas[schema.Name] = schema
		order = append(order, schema.Name)
	}
	for _, name := range order {
		l.define(name, set.New[string](4))
	}
	// present classes in file declaration order, not define order
	for _, name := range order {
		if class, ok := l.h.byName[name]; ok {
			l.h.Classes = append(l.h.Classes, class)
		}
	}
}

// define registers one class with the type context, first defining any
// supertype it depends on. trail holds the classes currently being
// defined, to catch hierarchy cycles.
func (l *loader) define(name string, trail *set.Set[string]) {
	if _, done := l.h.byName[name]; done {
		return
	}
	schema := l.schemas[name]
	trail.Insert(name)
	defer trail.Remove(name)

	scope := make(map[string]*ir.TypeParameter)
	typeParams := l.parseTypeParameters(name, schema.TypeParameters, scope)

	var superTypes []ir.Type
	var superNames []string
	for _, syntax := range schema.Supertypes {
		superType := l.parseType(name, syntax, scope)
		superClass, ok := superType.(*ir.ClassType)
		if !ok {
			l.h.errs = l.h.errs.With(kterr.New(kterr.NewMalformedType{
				MemberPath: name, Syntax: syntax, Detail: "a supertype must be a class type",
			}))
			continue
		}
		if trail.Contains(superClass.Name) {
			l.h.errs = l.h.errs.With(kterr.New(kterr.NewCyclicHierarchy{Class: superClass.Name}))
			continue
		}
		if !l.h.ctx.HasClass(superClass.Name) {
			if _, known := l.schemas[superClass.Name]; !known {
				l.h.errs = l.h.errs.With(kterr.New(kterr.NewUndefinedSupertype{
					Class: name, Name: superClass.Name,
				}))
				continue
			}
			l.define(superClass.Name, trail)
			if !l.h.ctx.HasClass(superClass.Name) {
				// its own definition failed; already reported
				continue
			}
		}
		superTypes = append(superTypes, superType)
		superNames = append(superNames, superClass.Name)
	}

	if err := l.h.ctx.DefineClass(name, typeParams, superTypes); err != nil {
		// every failure mode was checked above
		panic(err)
	}

	class := &Class{
		Name:       name,
		TypeParams: typeParams,
		Supertypes: superNames,
	}
	for i := range schema.Members {
		if member, ok := l.buildMember(name, &schema.Members[i], scope); ok {
			class.Members = append(class.Members, member)
		}
	}
	l.h.byName[name] = class
}

// parseTypeParameters turns "T" / "T : Bound" entries into fresh
// declarations and adds them to scope. Bounds are recorded but nothing
// checks them against an overridden member's bounds.
func (l *loader) parseTypeParameters(path string, entries []string, scope map[string]*ir.TypeParameter) []*ir.TypeParameter {
	params := make([]*ir.TypeParameter, 0, len(entries))
	for _, entry := range entries {
		paramName, boundSyntax, _ := strings.Cut(entry, ":")
		paramName = strings.TrimSpace(paramName)
		l.nextParamID++
		param := &ir.TypeParameter{ID: l.nextParamID, Name: paramName}
		scope[paramName] = param
		params = append(params, param)
		if boundSyntax = strings.TrimSpace(boundSyntax); boundSyntax != "" {
			param.Bounds = append(param.Bounds, l.parseType(path, boundSyntax, scope))
		}
	}
	return params
}

func (l *loader) buildMember(className string, schema *memberSchema, classScope map[string]*ir.TypeParameter) (ir.Member, bool) {
	switch {
	case schema.Function != "" && schema.Property != "":
		l.h.errs = l.h.errs.With(kterr.New(kterr.NewMalformedMember{
			ClassPath: className, Detail: "a member cannot be both a function and a property",
		}))
		return nil, false
	case schema.Function != "":
		path := className + "." + schema.Function
		scope := memberScope(classScope)
		typeParams := l.parseTypeParameters(path, schema.TypeParameters, scope)
		fn := &ir.Function{
			Name:       schema.Function,
			TypeParams: typeParams,
			IsSuspend:  schema.Suspend,
		}
		if schema.Receiver != "" {
			fn.Receiver = &ir.ValueParameter{Name: "<receiver>", Type: l.parseType(path, schema.Receiver, scope)}
		}
		for i, paramSyntax := range schema.Parameters {
			fn.ValueParams = append(fn.ValueParams, &ir.ValueParameter{
				Name: fmt.Sprintf("p%d", i),
				Type: l.parseType(path, paramSyntax, scope),
			})
		}
		if schema.Returns != "" {
			fn.ReturnType = l.parseType(path, schema.Returns, scope)
		} else {
			fn.ReturnType = l.h.ctx.Builtins().Unit
		}
		return fn, true
	case schema.Property != "":
		path := className + "." + schema.Property
		scope := memberScope(classScope)
		getter := &ir.Getter{
			TypeParams: l.parseTypeParameters(path, schema.TypeParameters, scope),
		}
		if schema.Receiver != "" {
			getter.Receiver = &ir.ValueParameter{Name: "<receiver>", Type: l.parseType(path, schema.Receiver, scope)}
		}
		if schema.Type == "" {
			l.h.errs = l.h.errs.With(kterr.New(kterr.NewMalformedMember{
				ClassPath: path, Detail: "a property must declare a type",
			}))
			return nil, false
		}
		getter.ReturnType = l.parseType(path, schema.Type, scope)
		return &ir.Property{Name: schema.Property, Getter: getter}, true
	default:
		l.h.errs = l.h.errs.With(kterr.New(kterr.NewMalformedMember{
			ClassPath: className, Detail: "a member must be either a function or a property",
		}))
		return nil, false
	}
}

func memberScope(classScope map[string]*ir.TypeParameter) map[string]*ir.TypeParameter {
	scope := make(map[string]*ir.TypeParameter, len(classScope))
	for name, param := range classScope {
		scope[name] = param
	}
	return scope
}
