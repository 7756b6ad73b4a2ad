package hierarchy

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/sandramulyana/kotlin/frontend/kterr"
)

// parseType parses "Name" or "Name<Arg, ...>". A bare name bound in
// scope becomes a reference to that type parameter. Problems are
// recorded as diagnostics and recovered with Any so loading continues.
func (l *loader) parseType(memberPath, syntax string, scope map[string]*ir.TypeParameter) ir.Type {
	t, rest, err := l.parseTypeExpr(strings.TrimSpace(syntax), memberPath, scope)
	if err == nil && strings.TrimSpace(rest) != "" {
		err = errors.Errorf("unexpected trailing %q", strings.TrimSpace(rest))
	}
	if err != nil {
		l.h.errs = l.h.errs.With(kterr.New(kterr.NewMalformedType{
			MemberPath: memberPath, Syntax: syntax, Detail: err.Error(),
		}))
		return l.h.ctx.Builtins().Any
	}
	return t
}

func (l *loader) parseTypeExpr(s, memberPath string, scope map[string]*ir.TypeParameter) (ir.Type, string, error) {
	name, rest := takeIdent(s)
	if name == "" {
		return nil, s, errors.New("expected a type name")
	}
	rest = strings.TrimSpace(rest)
	if param, ok := scope[name]; ok {
		if strings.HasPrefix(rest, "<") {
			return nil, rest, errors.Errorf("type parameter %s cannot take type arguments", name)
		}
		return &ir.ParamRef{Param: param}, rest, nil
	}
	class := &ir.ClassType{Name: name}
	if strings.HasPrefix(rest, "<") {
		rest = strings.TrimSpace(rest[1:])
		for {
			arg, after, err := l.parseTypeExpr(rest, memberPath, scope)
			if err != nil {
				return nil, after, err
			}
			class.Args = append(class.Args, arg)
			rest = strings.TrimSpace(after)
			if strings.HasPrefix(rest, ",") {
				rest = strings.TrimSpace(rest[1:])
				continue
			}
			if strings.HasPrefix(rest, ">") {
				rest = rest[1:]
				break
			}
			return nil, rest, errors.New("expected ',' or '>' in type argument list")
		}
	}
	if !l.h.ctx.HasClass(name) {
		if _, known := l.schemas[name]; !known {
			l.h.errs = l.h.errs.With(kterr.New(kterr.NewUndefinedType{
				MemberPath: memberPath, Name: name,
			}))
			return l.h.ctx.Builtins().Any, rest, nil
		}
	}
	return class, rest, nil
}

func takeIdent(s string) (ident, rest string) {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return s[:i], s[i:]
	}
	return s, ""
}
