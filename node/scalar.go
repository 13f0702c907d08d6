package node

import (
	"fixture-generator/descriptor"
	"fixture-generator/primitive"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"net/url"
	"reflect"
	"time"
)

// populateLeaf runs the leaf strategy of kind. Non-nullable strategies see the
// current value converted to their type, nullable ones the raw pointer.
func (e *Engine) populateLeaf(ctx Context, member descriptor.Member, kind primitive.KindEnum, current reflect.Value) reflect.Value {
	t := member.Type
	cfg := ctx.Config
	name := member.Name
	out := reflect.New(t).Elem()

	switch kind {
	case primitive.KindText:
		if current.String() == "" {
			if v, ok := e.mapper.TryResolve(t, member, cfg); ok {
				return reflect.ValueOf(v).Convert(t)
			}
		}

		out.SetString(e.leaves.Text.Populate(e.mapper.Narrow(member, cfg), name, current.String()))

	case primitive.KindNullableText:
		var cur *string
		if !current.IsNil() {
			s := current.Elem().String()
			cur = &s
		}

		if cur == nil || *cur == "" {
			if v, ok := e.mapper.TryResolve(t, member, cfg); ok {
				return reflect.ValueOf(v).Convert(t)
			}
		}

		s := e.leaves.NullableText.Populate(e.mapper.Narrow(member, cfg), name, cur)
		out.Set(reflect.New(t.Elem()))
		out.Elem().SetString(*s)

	case primitive.KindInteger:
		setInteger(out, e.leaves.Integer.Populate(cfg, name, toInt64(current)))

	case primitive.KindNullableInteger:
		var cur *int64
		if !current.IsNil() {
			n := toInt64(current.Elem())
			cur = &n
		}

		n := e.leaves.NullableInteger.Populate(cfg, name, cur)
		out.Set(reflect.New(t.Elem()))
		setInteger(out.Elem(), *n)

	case primitive.KindReal:
		out.SetFloat(e.leaves.Real.Populate(cfg, name, current.Float()))

	case primitive.KindNullableReal:
		var cur *float64
		if !current.IsNil() {
			f := current.Elem().Float()
			cur = &f
		}

		f := e.leaves.NullableReal.Populate(cfg, name, cur)
		out.Set(reflect.New(t.Elem()))
		out.Elem().SetFloat(*f)

	case primitive.KindBoolean:
		out.SetBool(e.leaves.Boolean.Populate(cfg, name, current.Bool()))

	case primitive.KindNullableBoolean:
		var cur *bool
		if !current.IsNil() {
			b := current.Elem().Bool()
			cur = &b
		}

		b := e.leaves.NullableBoolean.Populate(cfg, name, cur)
		out.Set(reflect.New(t.Elem()))
		out.Elem().SetBool(*b)

	case primitive.KindDateTime:
		out.Set(reflect.ValueOf(e.leaves.DateTime.Populate(cfg, name, current.Interface().(time.Time))))

	case primitive.KindNullableDateTime:
		out.Set(reflect.ValueOf(e.leaves.NullableDateTime.Populate(cfg, name, current.Interface().(*time.Time))))

	case primitive.KindURI:
		return e.populateURI(ctx, member, current)

	case primitive.KindEnumeration:
		return e.leaves.Enumeration.Populate(cfg, name, t, current)

	case primitive.KindNullableEnumeration:
		var cur reflect.Value
		if !current.IsNil() {
			cur = current.Elem()
		}

		out.Set(reflect.New(t.Elem()))
		out.Elem().Set(e.leaves.Enumeration.Populate(cfg, name, t.Elem(), cur))

	case primitive.KindUUID:
		out.Set(reflect.ValueOf(e.leaves.UUID.Populate(cfg, name, current.Interface().(uuid.UUID))))

	case primitive.KindNullableUUID:
		out.Set(reflect.ValueOf(e.leaves.NullableUUID.Populate(cfg, name, current.Interface().(*uuid.UUID))))

	case primitive.KindDecimal:
		out.Set(reflect.ValueOf(e.leaves.Decimal.Populate(cfg, name, current.Interface().(decimal.Decimal))))

	case primitive.KindNullableDecimal:
		out.Set(reflect.ValueOf(e.leaves.NullableDecimal.Populate(cfg, name, current.Interface().(*decimal.Decimal))))

	case primitive.KindDuration:
		out.SetInt(int64(e.leaves.Duration.Populate(cfg, name, time.Duration(current.Int()))))

	case primitive.KindNullableDuration:
		out.Set(reflect.ValueOf(e.leaves.NullableDuration.Populate(cfg, name, current.Interface().(*time.Duration))))
	}

	return out
}

// populateURI serves both url.URL and *url.URL members.
func (e *Engine) populateURI(ctx Context, member descriptor.Member, current reflect.Value) reflect.Value {
	var cur *url.URL

	switch v := current.Interface().(type) {
	case *url.URL:
		cur = v
	case url.URL:
		if v != (url.URL{}) {
			cur = &v
		}
	}

	u := e.leaves.URI.Populate(ctx.Config, member.Name, cur)
	if member.Type.Kind() == reflect.Pointer {
		return reflect.ValueOf(u)
	}

	return reflect.ValueOf(*u)
}
