package node

import (
	"fixture-generator/descriptor"
	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/naming"
	"fixture-generator/leaf"
	"fixture-generator/primitive"
	"fmt"
	"reflect"
)

// mapAttemptsFactor bounds the key draws per requested map entry, small key
// domains (bool, two valued enums) cannot yield every entry.
const mapAttemptsFactor = 4

// populateSlice fills a slice with exactly DefaultCollectionItemCount
// elements. An empty non-nil slice is reused, any other one is replaced.
func (e *Engine) populateSlice(ctx Context, member descriptor.Member, current reflect.Value) (reflect.Value, diagnostic.Outcome) {
	if !ctx.CanDescend() {
		return current, diagnostic.Exhausted(ctx.Path)
	}

	t := member.Type
	count := ctx.Config.DefaultCollectionItemCount

	out := current
	if current.IsNil() || current.Len() != 0 {
		out = reflect.MakeSlice(t, 0, count)
	}

	elem := member.Element(naming.Element(member.Name), t.Elem())
	elemCtx := ctx.Descend()

	for i := 0; i < count; i++ {
		out = reflect.Append(out, e.populateElement(elemCtx.Element(i), elem))
	}

	return out, diagnostic.Populated(ctx.Path, common.TypeName(t))
}

// populateArray fills every slot of a zero valued array. Arrays holding any
// value are left as they are.
func (e *Engine) populateArray(ctx Context, member descriptor.Member, current reflect.Value) (reflect.Value, diagnostic.Outcome) {
	t := member.Type

	if !current.IsZero() {
		return current, diagnostic.Skipped(ctx.Path, common.TypeName(t), diagnostic.CodePreset, "array already holds values")
	}

	if !ctx.CanDescend() {
		return current, diagnostic.Exhausted(ctx.Path)
	}

	out := reflect.New(t).Elem()
	elem := member.Element(naming.Element(member.Name), t.Elem())
	elemCtx := ctx.Descend()

	for i := 0; i < t.Len(); i++ {
		out.Index(i).Set(e.populateElement(elemCtx.Element(i), elem))
	}

	return out, diagnostic.Populated(ctx.Path, common.TypeName(t))
}

// populateMap adds DefaultCollectionItemCount entries to a nil or empty map.
// Keys of an enumeration with declared members are taken in declaration
// order, a map keyed by a smaller domain holds one entry per member.
func (e *Engine) populateMap(ctx Context, member descriptor.Member, current reflect.Value) (reflect.Value, diagnostic.Outcome) {
	t := member.Type

	if !current.IsNil() && current.Len() > 0 {
		return current, diagnostic.Skipped(ctx.Path, common.TypeName(t), diagnostic.CodePreset, "map already holds entries")
	}

	if !ctx.CanDescend() {
		return current, diagnostic.Exhausted(ctx.Path)
	}

	count := ctx.Config.DefaultCollectionItemCount

	out := current
	if current.IsNil() {
		out = reflect.MakeMapWithSize(t, count)
	}

	name := naming.Element(member.Name)
	key := member.Element(name+"Key", t.Key())
	value := member.Element(name, t.Elem())
	elemCtx := ctx.Descend()

	if primitive.Classify(key.Type) == primitive.KindEnumeration {
		if candidates := leaf.Candidates(key.Type); len(candidates) > 0 {
			keyCtx := elemCtx.Key("key")

			for _, k := range candidates[:min(count, len(candidates))] {
				keyCtx.Record(diagnostic.Populated(keyCtx.Path, common.TypeName(key.Type)))
				out.SetMapIndex(k, e.populateElement(elemCtx.Key(fmt.Sprint(k.Interface())), value))
			}

			return out, diagnostic.Populated(ctx.Path, common.TypeName(t))
		}
	}

	for attempt := 0; attempt < count*mapAttemptsFactor && out.Len() < count; attempt++ {
		k := e.populateElement(elemCtx.Key("key"), key)
		if out.MapIndex(k).IsValid() {
			continue
		}

		v := e.populateElement(elemCtx.Key(fmt.Sprint(k.Interface())), value)
		out.SetMapIndex(k, v)
	}

	return out, diagnostic.Populated(ctx.Path, common.TypeName(t))
}
