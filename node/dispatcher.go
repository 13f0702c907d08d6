package node

import (
	"fixture-generator/descriptor"
	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/primitive"
	"reflect"
)

// populate dispatches on the kind of the member. Elements of collections and
// the root are synthesized in place, the hop into them was already counted.
func (e *Engine) populate(
	ctx Context, member descriptor.Member, current reflect.Value, inPlace bool,
) (reflect.Value, diagnostic.Outcome) {
	if !current.IsValid() {
		current = reflect.Zero(member.Type)
	}

	if ctx.Exhausted() {
		return current, diagnostic.Exhausted(ctx.Path)
	}

	if member.Constraints.Skip {
		return current, diagnostic.Skipped(ctx.Path, common.TypeName(member.Type),
			diagnostic.CodeSkipTag, "excluded by tag")
	}

	kind := primitive.Classify(member.Type)

	switch {
	// collections first, byte slices are not text
	case kind == primitive.KindOrderedCollection:
		return e.populateSlice(ctx, member, current)
	case kind == primitive.KindArray:
		return e.populateArray(ctx, member, current)
	case kind == primitive.KindMap:
		return e.populateMap(ctx, member, current)
	case kind.IsLeaf():
		return e.populateLeaf(ctx, member, kind, current), diagnostic.Populated(ctx.Path, common.TypeName(member.Type))
	case kind == primitive.KindSelfFilling:
		return e.populateSelfFilling(ctx, member, current)
	case kind == primitive.KindComplex:
		return e.populateComplex(ctx, member, current, inPlace)
	default:
		return e.unsupported(ctx, member)
	}
}

// populateElement produces one element of a collection at the depth of ctx
// and records its outcome.
func (e *Engine) populateElement(ctx Context, member descriptor.Member) reflect.Value {
	v, o := e.populate(ctx, member, reflect.Zero(member.Type), true)
	ctx.Record(o)

	return v
}
