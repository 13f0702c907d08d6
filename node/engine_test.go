package node_test

import (
	"bytes"
	"fixture-generator/constraint"
	"fixture-generator/descriptor"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/leaf"
	"fixture-generator/node"
	"fixture-generator/options"
	"fixture-generator/store"
	"fixture-generator/warehouse"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"testing"
	"time"
)

func reflectType[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

func newEngine(t *testing.T, ctors ...any) *node.Engine {
	t.Helper()

	faker := gofakeit.New(3)

	registry := node.NewConstructors()
	for _, fn := range ctors {
		require.NoError(t, registry.Register(fn))
	}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	return node.New(leaf.Defaults(faker), constraint.NewMapper(faker), registry, logger)
}

func field(t *testing.T, owner reflect.Type, name string) descriptor.Member {
	t.Helper()

	for _, m := range descriptor.Members(owner) {
		if m.Name == name {
			return m
		}
	}

	t.Fatalf("%s has no field %s", owner, name)

	return descriptor.Member{}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := node.NewContext(options.New(options.WithMaxDepth(1)), nil)
	require.NotNil(t, ctx.Report())
	assert.True(t, ctx.CanDescend())
	assert.False(t, ctx.Exhausted())

	deeper := ctx.Member("Order").Member("Items").Descend().Element(1).Member("Sku")
	assert.Equal(t, "Order.Items[1].Sku", deeper.Path)
	assert.Equal(t, 1, deeper.Depth)
	assert.False(t, deeper.CanDescend())
	assert.True(t, deeper.Descend().Exhausted())

	assert.Equal(t, 0, ctx.Depth, "derivations copy the context")
	assert.Empty(t, ctx.Path)

	deeper.Record(diagnostic.Populated(deeper.Path, "string"))
	assert.True(t, ctx.Report().IsPopulated("Order.Items[1].Sku"))
}

func TestPopulateMember_Slice(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	member := field(t, reflectType[store.Order](), "Items")
	ctx := node.NewContext(options.New(options.WithCollectionItemCount(3)), nil).Member("Items")

	t.Run("nil", func(t *testing.T) {
		v, o := e.PopulateMember(ctx, member, reflect.Value{})
		assert.True(t, o.OK())
		assert.Len(t, v.Interface(), 3)
	})

	t.Run("empty is reused", func(t *testing.T) {
		current := make([]store.LineItem, 0, 8)
		v, _ := e.PopulateMember(ctx, member, reflect.ValueOf(current))

		items := v.Interface().([]store.LineItem)
		require.Len(t, items, 3)
		assert.Equal(t, 8, cap(items))
	})

	t.Run("filled is replaced", func(t *testing.T) {
		current := []store.LineItem{{Sku: "AAAAAA"}}
		v, _ := e.PopulateMember(ctx, member, reflect.ValueOf(current))

		items := v.Interface().([]store.LineItem)
		require.Len(t, items, 3)
		assert.NotEqual(t, "AAAAAA", items[0].Sku)
	})

	t.Run("exhausted", func(t *testing.T) {
		flat := node.NewContext(options.New(options.WithMaxDepth(0)), nil)
		v, o := e.PopulateMember(flat, member, reflect.Value{})
		assert.Equal(t, diagnostic.StatusExhausted, o.Status)
		assert.True(t, v.IsNil())
	})
}

func TestPopulateMember_Array(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	member := field(t, reflectType[warehouse.Product](), "Dimensions")
	ctx := node.NewContext(options.Default(), nil)

	v, o := e.PopulateMember(ctx, member, reflect.Value{})
	require.True(t, o.OK())
	for _, d := range v.Interface().([3]float64) {
		assert.Positive(t, d)
	}

	preset := [3]float64{1, 0, 0}
	v, o = e.PopulateMember(ctx, member, reflect.ValueOf(preset))
	assert.Equal(t, preset, v.Interface())
	assert.Equal(t, diagnostic.CodePreset, o.Code)
}

func TestPopulateMember_Map(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	member := field(t, reflectType[warehouse.Product](), "Labels")
	ctx := node.NewContext(options.Default(), nil)

	v, o := e.PopulateMember(ctx, member, reflect.Value{})
	require.True(t, o.OK())
	assert.Len(t, v.Interface(), 2)

	preset := map[string]string{"color": "red"}
	v, o = e.PopulateMember(ctx, member, reflect.ValueOf(preset))
	assert.Equal(t, preset, v.Interface())
	assert.Equal(t, diagnostic.CodePreset, o.Code)
}

func TestPopulateMember_MapKeyDomain(t *testing.T) {
	t.Parallel()

	type sample struct {
		Flags map[bool]int
		Stock map[warehouse.Bin]int16
	}

	e := newEngine(t)
	owner := reflectType[sample]()
	ctx := node.NewContext(options.New(options.WithCollectionItemCount(6)), nil)

	for range 20 {
		v, o := e.PopulateMember(ctx, field(t, owner, "Flags"), reflect.Value{})
		require.True(t, o.OK())
		require.Len(t, v.Interface(), 1)

		v, o = e.PopulateMember(ctx, field(t, owner, "Stock"), reflect.Value{})
		require.True(t, o.OK())

		stock := v.Interface().(map[warehouse.Bin]int16)
		require.Len(t, stock, 4)
		for bin := warehouse.Bin(1); bin <= 4; bin++ {
			require.Contains(t, stock, bin)
		}
	}

	small := node.NewContext(options.New(options.WithCollectionItemCount(2)), nil)
	v, _ := e.PopulateMember(small, field(t, owner, "Stock"), reflect.Value{})
	assert.Equal(t, []warehouse.Bin{1, 2}, slices.Sorted(maps.Keys(v.Interface().(map[warehouse.Bin]int16))))
}

func TestPopulateMember_NullableLeaves(t *testing.T) {
	t.Parallel()

	type sample struct {
		Bin     *warehouse.Bin
		Parent  *uuid.UUID
		Price   *decimal.Decimal
		Timeout *time.Duration
	}

	e := newEngine(t)
	owner := reflectType[sample]()
	ctx := node.NewContext(options.Default(), nil)

	v, o := e.PopulateMember(ctx, field(t, owner, "Bin"), reflect.Value{})
	require.True(t, o.OK())
	bin := v.Interface().(*warehouse.Bin)
	require.NotNil(t, bin)
	assert.True(t, bin.IsValid(), *bin)

	v, o = e.PopulateMember(ctx, field(t, owner, "Parent"), reflect.Value{})
	require.True(t, o.OK())
	require.NotNil(t, v.Interface().(*uuid.UUID))
	assert.NotEqual(t, uuid.Nil, *v.Interface().(*uuid.UUID))

	v, o = e.PopulateMember(ctx, field(t, owner, "Price"), reflect.Value{})
	require.True(t, o.OK())
	require.NotNil(t, v.Interface().(*decimal.Decimal))
	assert.True(t, v.Interface().(*decimal.Decimal).IsPositive())

	v, o = e.PopulateMember(ctx, field(t, owner, "Timeout"), reflect.Value{})
	require.True(t, o.OK())
	require.NotNil(t, v.Interface().(*time.Duration))
	assert.Positive(t, *v.Interface().(*time.Duration))

	preset := warehouse.Bin(3)
	v, _ = e.PopulateMember(ctx, field(t, owner, "Bin"), reflect.ValueOf(&preset))
	assert.Equal(t, warehouse.Bin(3), *v.Interface().(*warehouse.Bin))
}

func TestPopulateMember_Leaves(t *testing.T) {
	t.Parallel()

	type sample struct {
		Count   int8
		Size    *uint16
		Ratio   float32
		Email   *string
		Enabled *bool
		Secret  string `fixture:"-"`
		Bin     warehouse.Bin
	}

	e := newEngine(t)
	owner := reflectType[sample]()
	ctx := node.NewContext(options.Default(), nil)

	v, _ := e.PopulateMember(ctx, field(t, owner, "Count"), reflect.Value{})
	assert.Positive(t, v.Interface().(int8))

	v, _ = e.PopulateMember(ctx, field(t, owner, "Size"), reflect.Value{})
	require.NotNil(t, v.Interface().(*uint16))
	assert.Positive(t, *v.Interface().(*uint16))

	v, _ = e.PopulateMember(ctx, field(t, owner, "Ratio"), reflect.Value{})
	assert.Positive(t, v.Interface().(float32))

	v, _ = e.PopulateMember(ctx, field(t, owner, "Email"), reflect.Value{})
	require.NotNil(t, v.Interface().(*string))
	assert.Contains(t, *v.Interface().(*string), "@")

	v, _ = e.PopulateMember(ctx, field(t, owner, "Enabled"), reflect.Value{})
	assert.True(t, *v.Interface().(*bool))

	v, o := e.PopulateMember(ctx, field(t, owner, "Secret"), reflect.ValueOf("kept"))
	assert.Equal(t, "kept", v.Interface())
	assert.Equal(t, diagnostic.CodeSkipTag, o.Code)

	v, _ = e.PopulateMember(ctx, field(t, owner, "Bin"), reflect.Value{})
	assert.True(t, v.Interface().(warehouse.Bin).IsValid())
}

func TestPopulateProperties(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := node.NewContext(options.New(options.WithMaxDepth(1)), nil).Member("Customer")

	customer := &store.Customer{Name: "Ann"}
	e.PopulateProperties(ctx, reflect.ValueOf(customer))

	assert.Equal(t, "Ann", customer.Name)
	assert.Contains(t, customer.Email, "@")
	require.NotNil(t, customer.Address)
	assert.NotEmpty(t, customer.Address.City)

	// nil and non-struct instances are ignored
	e.PopulateProperties(ctx, reflect.ValueOf((*store.Customer)(nil)))
	e.PopulateProperties(ctx, reflect.ValueOf(42))
}

func TestBuildConstructorParameters(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctor, err := node.ParseConstructor(store.NewInvoice, "number")
	require.NoError(t, err)

	report := &diagnostic.Report{}
	args := e.BuildConstructorParameters(node.NewContext(options.Default(), report).Member("Invoice"), ctor)

	require.Len(t, args, 2)
	assert.NotEmpty(t, args[0].String())
	assert.True(t, report.IsPopulated("Invoice.number"))
	assert.True(t, report.IsPopulated("Invoice.arg1"))
}

func TestBuild_DepthBound(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	for depth := 0; depth <= 3; depth++ {
		ctx := node.NewContext(options.New(options.WithMaxDepth(depth), options.WithCollectionItemCount(1)), nil)
		root := e.Build(ctx, reflectType[*warehouse.Category]()).Interface().(*warehouse.Category)

		require.NotNil(t, root)
		assert.Equal(t, depth, height(root), "depth %d", depth)
	}
}

// height counts the levels below c, through parents and children alike.
func height(c *warehouse.Category) int {
	if c == nil {
		return -1
	}

	h := 0
	if c.Parent != nil {
		h = max(h, 1+height(c.Parent))
	}

	for i := range c.Children {
		h = max(h, 1+height(&c.Children[i]))
	}

	return h
}
