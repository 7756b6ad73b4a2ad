package override

// Verdict is the outcome of an override-compatibility check.
//
// Incompatible means the two members are unrelated in an overriding
// sense: the pair is not an override candidate and callers normally
// treat it as a plain overload with no diagnostic. Conflict means the
// signatures are related but differ in a way forbidden for an
// override; callers normally report those as errors.
type Verdict interface {
	isVerdict()
	String() string
}

var (
	_ Verdict = Overridable{}
	_ Verdict = Incompatible{}
	_ Verdict = Conflict{}
)

type Overridable struct{}

func (Overridable) isVerdict()     {}
func (Overridable) String() string { return "OVERRIDABLE" }

type Incompatible struct {
	Reason string
}

func (Incompatible) isVerdict()       {}
func (v Incompatible) String() string { return "INCOMPATIBLE: " + v.Reason }

type Conflict struct {
	Reason string
}

func (Conflict) isVerdict()       {}
func (v Conflict) String() string { return "CONFLICT: " + v.Reason }
