package node

import (
	"fixture-generator/internal/diagnostic"
	"fixture-generator/options"
	"reflect"
	"strconv"
)

// Context is the per-call state of a build. It is passed by value, every
// derivation returns a copy.
type Context struct {
	Depth  int
	Config options.Config
	Path   string

	build *build
}

// build is shared by every Context derived from the same root.
type build struct {
	report *diagnostic.Report
	warned seen
}

// NewContext starts a build at depth zero. A nil report is replaced by a
// fresh one.
func NewContext(cfg options.Config, report *diagnostic.Report) Context {
	if report == nil {
		report = &diagnostic.Report{}
	}

	return Context{Config: cfg, build: &build{report: report}}
}

// Exhausted reports whether the depth budget is spent.
func (c Context) Exhausted() bool {
	return c.Depth > c.Config.MaxDepth
}

// CanDescend reports whether one more level fits into the budget.
func (c Context) CanDescend() bool {
	return c.Depth+1 <= c.Config.MaxDepth
}

// Descend returns the context one level deeper.
func (c Context) Descend() Context {
	c.Depth++
	return c
}

// Member returns the context for a named member.
func (c Context) Member(name string) Context {
	if c.Path == "" {
		c.Path = name
	} else {
		c.Path += "." + name
	}

	return c
}

// Element returns the context for the i-th element of a collection.
func (c Context) Element(i int) Context {
	return c.Key(strconv.Itoa(i))
}

// Key returns the context for a keyed element of a collection.
func (c Context) Key(key string) Context {
	c.Path += "[" + key + "]"
	return c
}

// Record adds an outcome to the build report.
func (c Context) Record(o diagnostic.Outcome) {
	if c.build == nil {
		return
	}

	c.build.report.Record(o)
}

// Report returns the build report.
func (c Context) Report() *diagnostic.Report {
	if c.build == nil {
		return nil
	}

	return c.build.report
}

// firstWarning reports whether t was not logged as unsupported yet.
func (c Context) firstWarning(t reflect.Type) bool {
	if c.build == nil {
		return true
	}

	return c.build.warned.Add(t)
}
