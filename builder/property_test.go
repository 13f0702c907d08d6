package builder_test

import (
	"fixture-generator/builder"
	"fixture-generator/options"
	"fixture-generator/store"
	"fixture-generator/warehouse"
	"pgregory.net/rapid"
	"testing"
)

func TestProperty_CollectionsHaveConfiguredCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 5).Draw(t, "count")

		order, _ := builder.Populate[store.Order](quiet(), builder.WithConfigOptions(
			options.WithMaxDepth(2),
			options.WithCollectionItemCount(count),
		))

		if len(order.Items) != count {
			t.Fatalf("got %d items, want %d", len(order.Items), count)
		}
	})
}

func TestProperty_DepthIsBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depth := rapid.IntRange(0, 4).Draw(t, "depth")
		count := rapid.IntRange(0, 2).Draw(t, "count")

		root, _ := builder.Populate[warehouse.Category](quiet(), builder.WithConfigOptions(
			options.WithMaxDepth(depth),
			options.WithCollectionItemCount(count),
		))

		if got := categoryHeight(&root); got != depth {
			t.Fatalf("category graph is %d levels deep, want %d", got, depth)
		}
	})
}

func TestProperty_StringsRespectBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(0, 20).Draw(t, "min")
		hi := rapid.IntRange(lo, 40).Draw(t, "max")

		addr, _ := builder.Populate[store.Address](quiet(), builder.WithConfigOptions(
			options.WithStringLength(lo, hi),
		))

		if n := len(addr.Street); n < lo || n > hi {
			t.Fatalf("street %q has length %d outside [%d, %d]", addr.Street, n, lo, hi)
		}
	})
}

func categoryHeight(c *warehouse.Category) int {
	h := 0
	if c.Parent != nil {
		h = max(h, 1+categoryHeight(c.Parent))
	}

	for i := range c.Children {
		h = max(h, 1+categoryHeight(&c.Children[i]))
	}

	return h
}
