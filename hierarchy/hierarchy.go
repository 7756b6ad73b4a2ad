// Package hierarchy loads class hierarchies from YAML descriptions and
// runs override-compatibility checks across them.
package hierarchy

import (
	"fmt"
	"slices"
	"strings"

	set "github.com/hashicorp/go-set/v3"
	"github.com/sandramulyana/kotlin/frontend/ir"
	"github.com/sandramulyana/kotlin/frontend/kterr"
	"github.com/sandramulyana/kotlin/frontend/override"
	"github.com/sandramulyana/kotlin/frontend/types"
	"github.com/sandramulyana/kotlin/internal/log"
)

var logger = log.DefaultLogger.With("section", "hierarchy")

type Class struct {
	Name       string
	TypeParams []*ir.TypeParameter
	// Supertypes holds the declared (direct) supertype class names
	Supertypes []string
	Members    []ir.Member
}

type Hierarchy struct {
	// Classes in file declaration order
	Classes []*Class

	byName map[string]*Class
	ctx    *types.TypeCtx
	errs   *kterr.Errors
}

func (h *Hierarchy) TypeCtx() *types.TypeCtx { return h.ctx }

// Errors returns the problems found while loading the hierarchy.
func (h *Hierarchy) Errors() *kterr.Errors { return h.errs }

func (h *Hierarchy) Class(name string) (*Class, bool) {
	class, ok := h.byName[name]
	return class, ok
}

// Finding ties a verdict to the member pair it concerns. Paths are
// "Class.member".
type Finding struct {
	SuperPath string
	SubPath   string
	Verdict   override.Verdict
}

type Report struct {
	Findings []Finding
}

// Conflicts maps every Conflict finding to a diagnostic. Incompatible
// findings produce none: an unrelated signature is simply not an
// override candidate.
func (r *Report) Conflicts() *kterr.Errors {
	var errs *kterr.Errors
	for _, f := range r.Findings {
		if conflict, ok := f.Verdict.(override.Conflict); ok {
			errs = errs.With(kterr.New(kterr.NewConflictingOverride{
				SuperPath: f.SuperPath,
				SubPath:   f.SubPath,
				Reason:    conflict.Reason,
			}))
		}
	}
	return errs
}

func (r *Report) String() string {
	sb := strings.Builder{}
	for _, f := range r.Findings {
		sb.WriteString(fmt.Sprintf("%s vs %s: %s\n", f.SubPath, f.SuperPath, f.Verdict))
	}
	return sb.String()
}

// Check compares every member of every class against the same-named
// members of its transitive supertypes, return types included. Each
// pair is judged independently; which candidate actually ends up
// overridden is not decided here.
func (h *Hierarchy) Check() *Report {
	report := &Report{}
	for _, class := range h.Classes {
		for _, superClass := range h.supertypesOf(class) {
			for _, superMember := range superClass.Members {
				for _, member := range class.Members {
					if superMember.MemberName() != member.MemberName() {
						continue
					}
					verdict := override.CheckOverridability(h.ctx, superMember, member, true)
					report.Findings = append(report.Findings, Finding{
						SuperPath: superClass.Name + "." + superMember.MemberName(),
						SubPath:   class.Name + "." + member.MemberName(),
						Verdict:   verdict,
					})
				}
			}
		}
	}
	logger.Debug("checked hierarchy", "classes", len(h.Classes), "findings", len(report.Findings))
	return report
}

// supertypesOf walks declared supertype edges breadth-first, visiting
// each class once, preserving declaration order for determinism.
func (h *Hierarchy) supertypesOf(class *Class) []*Class {
	visited := set.New[string](4)
	queue := slices.Clone(class.Supertypes)
	var out []*Class
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited.Contains(name) {
			continue
		}
		visited.Insert(name)
		super, ok := h.byName[name]
		if !ok {
			// builtin supertypes carry no members to override
			continue
		}
		out = append(out, super)
		queue = append(queue, super.Supertypes...)
	}
	return out
}
