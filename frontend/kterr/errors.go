package kterr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	ConflictingOverride
	DuplicateClass
	UndefinedSupertype
	CyclicHierarchy
	UndefinedType
	MalformedType
	MalformedMember
)

// KtError is a user-facing diagnostic. Path locates the class or
// member the diagnostic is about, as "Class" or "Class.member".
type KtError interface {
	Error() string
	Code() ErrCode
	Path() string

	withStack([]byte) KtError
	getStack() []byte
}

func FormatWithCode(e KtError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s: %s", stack, e.Code(), e.Path(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s: %s", e.Code(), e.Path(), e.Error())
}

func New[E KtError](err E) KtError {
	return err.withStack(debug.Stack())
}

type NewConflictingOverride struct {
	SuperPath string
	SubPath   string
	Reason    string
	stack     []byte
}

func (e NewConflictingOverride) Error() string {
	return fmt.Sprintf("member cannot override '%s': %s", e.SuperPath, e.Reason)
}
func (e NewConflictingOverride) Code() ErrCode    { return ConflictingOverride }
func (e NewConflictingOverride) Path() string     { return e.SubPath }
func (e NewConflictingOverride) getStack() []byte { return e.stack }
func (e NewConflictingOverride) withStack(stack []byte) KtError {
	e.stack = stack
	return e
}

type NewDuplicateClass struct {
	Name  string
	stack []byte
}

func (e NewDuplicateClass) Error() string {
	return fmt.Sprintf("class '%s' is declared more than once", e.Name)
}
func (e NewDuplicateClass) Code() ErrCode    { return DuplicateClass }
func (e NewDuplicateClass) Path() string     { return e.Name }
func (e NewDuplicateClass) getStack() []byte { return e.stack }
func (e NewDuplicateClass) withStack(stack []byte) KtError {
	e.stack = stack
	return e
}

type NewUndefinedSupertype struct {
	Class string
	Name  string
	stack []byte
}

func (e NewUndefinedSupertype) Error() string {
	return fmt.Sprintf("supertype '%s' is not defined", e.Name)
}
func (e NewUndefinedSupertype) Code() ErrCode    { return UndefinedSupertype }
func (e NewUndefinedSupertype) Path() string     { return e.Class }
func (e NewUndefinedSupertype) getStack() []byte { return e.stack }
func (e NewUndefinedSupertype) withStack(stack []byte) KtError {
	e.stack = stack
	return e
}

type NewCyclicHierarchy struct {
	Class string
	stack []byte
}

func (e NewCyclicHierarchy) Error() string {
	return fmt.Sprintf("class '%s' appears in its own supertype hierarchy", e.Class)
}
func (e NewCyclicHierarchy) Code() ErrCode    { return CyclicHierarchy }
func (e NewCyclicHierarchy) Path() string     { return e.Class }
func (e NewCyclicHierarchy) getStack() []byte { return e.stack }
func (e NewCyclicHierarchy) withStack(stack []byte) KtError {
	e.stack = stack
	return e
}

type NewUndefinedType struct {
	MemberPath string
	Name       string
	stack      []byte
}

func (e NewUndefinedType) Error() string {
	return fmt.Sprintf("type '%s' is not defined", e.Name)
}
func (e NewUndefinedType) Code() ErrCode    { return UndefinedType }
func (e NewUndefinedType) Path() string     { return e.MemberPath }
func (e NewUndefinedType) getStack() []byte { return e.stack }
func (e NewUndefinedType) withStack(stack []byte) KtError {
	e.stack = stack
	return e
}

type NewMalformedType struct {
	MemberPath string
	Syntax     string
	Detail     string
	stack      []byte
}

func (e NewMalformedType) Error() string {
	return fmt.Sprintf("cannot parse type '%s': %s", e.Syntax, e.Detail)
}
func (e NewMalformedType) Code() ErrCode    { return MalformedType }
func (e NewMalformedType) Path() string     { return e.MemberPath }
func (e NewMalformedType) getStack() []byte { return e.stack }
func (e NewMalformedType) withStack(stack []byte) KtError {
	e.stack = stack
	return e
}

type NewMalformedMember struct {
	ClassPath string
	Detail    string
	stack     []byte
}

func (e NewMalformedMember) Error() string {
	return fmt.Sprintf("malformed member: %s", e.Detail)
}
func (e NewMalformedMember) Code() ErrCode    { return MalformedMember }
func (e NewMalformedMember) Path() string     { return e.ClassPath }
func (e NewMalformedMember) getStack() []byte { return e.stack }
func (e NewMalformedMember) withStack(stack []byte) KtError {
	e.stack = stack
	return e
}
