// Package warehouse models stock keeping with a few shapes that need special
// handling: self references, arrays, maps, interfaces and self filling values.
package warehouse

import (
	"fmt"
	"github.com/google/uuid"
	"math/rand"
	"time"
)

// Category is a node of the product taxonomy.
type Category struct {
	ID       uuid.UUID
	Name     string
	Parent   *Category
	Children []Category
}

// Product is a sellable item.
type Product struct {
	ID         uint
	SKU        string `fixture:",min:4,max:10"`
	Name       string
	Weight     float32
	Dimensions [3]float64
	Labels     map[string]string
	Stock      map[Bin]int16
	Category   *Category
	Barcode    Barcode
	Supplier   Supplier
	Restocked  chan time.Time
	OnDepleted func(Product)
	Lead       time.Duration
}

// Bin identifies a storage location.
type Bin uint8

// IsValid reports whether the bin exists in the warehouse layout.
func (b Bin) IsValid() bool {
	return b >= 1 && b <= 4
}

// Supplier delivers products; suppliers are built with a constructor only.
type Supplier interface {
	Name() string
}

type vendor struct {
	name string
}

func (v vendor) Name() string { return v.name }

// NewSupplier creates a supplier.
func NewSupplier(name string) Supplier {
	return vendor{name: name}
}

// Barcode is an EAN-13 code that generates itself.
type Barcode struct {
	Digits string
}

// RandFill implements randfill.SimpleSelfFiller.
func (b *Barcode) RandFill(r *rand.Rand) {
	b.Digits = fmt.Sprintf("%013d", r.Int63n(1e13))
}
