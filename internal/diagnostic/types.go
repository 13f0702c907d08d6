package diagnostic

import (
	"errors"
	"fixture-generator/internal/common"
	"fmt"
	"slices"
	"strings"
)

// Skip codes.
const (
	CodeSkipTag           = "skip-tag"
	CodeUnsupportedType   = "unsupported-type"
	CodeNoConstructor     = "no-constructor"
	CodeConstructorFailed = "constructor-failed"
	CodePreset            = "preset"
)

// Status is the result class of populating one member.
type Status int

const (
	StatusPopulated Status = iota
	StatusSkipped
	StatusExhausted
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPopulated:
		return "populated"
	case StatusSkipped:
		return "skipped"
	case StatusExhausted:
		return "exhausted"
	default:
		return common.UnknownStr
	}
}

// Outcome is the result of populating a single member.
type Outcome struct {
	// Status of the member after population.
	Status Status
	// Code identifies the skip reason, empty unless skipped.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName is the declared type of the member.
	TypeName string
	// Path locates the member from the root, e.g. "Order.Items[1].Sku".
	Path string
}

// Populated reports a member that received a generated value.
func Populated(path, typeName string) Outcome {
	return Outcome{Status: StatusPopulated, TypeName: typeName, Path: path}
}

// Skipped reports a member left at its current value.
func Skipped(path, typeName, code, message string) Outcome {
	return Outcome{
		Status:   StatusSkipped,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Path:     path,
	}
}

// Exhausted reports a member untouched because the depth budget was spent.
func Exhausted(path string) Outcome {
	return Outcome{Status: StatusExhausted, Path: path}
}

// OK reports whether a value was generated.
func (o Outcome) OK() bool {
	return o.Status == StatusPopulated
}

// String returns a formatted outcome string.
func (o Outcome) String() string {
	var prefix []string
	if o.TypeName != "" {
		prefix = append(prefix, "["+o.TypeName+"]")
	}

	if o.Path != "" {
		prefix = append(prefix, o.Path)
	}

	msg := o.Status.String()
	if o.Code != "" {
		msg = fmt.Sprintf("[%s] %s", o.Code, o.Message)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Report aggregates the outcomes of one build.
type Report struct {
	populated []Outcome
	skipped   []Outcome
}

// Record adds an outcome. Exhausted outcomes are dropped.
func (r *Report) Record(o Outcome) {
	switch o.Status {
	case StatusPopulated:
		r.populated = append(r.populated, o)
	case StatusSkipped:
		r.skipped = append(r.skipped, o)
	}
}

// Populated returns the populated outcomes in recording order.
func (r *Report) Populated() []Outcome {
	return slices.Clone(r.populated)
}

// Skipped returns the skipped outcomes in recording order.
func (r *Report) Skipped() []Outcome {
	return slices.Clone(r.skipped)
}

// IsPopulated reports whether the member at path received a value.
func (r *Report) IsPopulated(path string) bool {
	return slices.ContainsFunc(r.populated, func(o Outcome) bool { return o.Path == path })
}

// Lookup returns the skipped outcome recorded for path.
func (r *Report) Lookup(path string) (Outcome, bool) {
	i := slices.IndexFunc(r.skipped, func(o Outcome) bool { return o.Path == path })
	if i < 0 {
		return Outcome{}, false
	}

	return r.skipped[i], true
}

// HasCode reports whether any member was skipped with code.
func (r *Report) HasCode(code string) bool {
	return slices.ContainsFunc(r.skipped, func(o Outcome) bool { return o.Code == code })
}

// Complete returns true if no member was skipped.
func (r *Report) Complete() bool {
	return len(r.skipped) == 0
}

// Err returns a combined error describing every skipped member, or nil.
func (r *Report) Err() error {
	if r.Complete() {
		return nil
	}

	parts := make([]string, 0, len(r.skipped))
	for _, o := range r.skipped {
		parts = append(parts, o.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
