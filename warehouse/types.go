// Package warehouse is a sample storage model that exercises container,
// optional and generic fields. Its accessors live in property_gen.go.
package warehouse

//go:generate go run property-generator/cmd/property-generator gen .

import (
	"database/sql"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
)

// Bin is one storage location. Stock maps a SKU to the quantity held.
//
//property:get(public),set(public),clr(public, scope="auto")
type Bin struct {
	code      [8]byte
	capacity  uint32
	stock     *treemap.Map
	pending   arraylist.List    `property:"set(disable)"`
	labels    map[string]string `property:"get(type=\"clone\")"`
	tags      *hashset.Set
	lastAudit sql.Null[time.Time]
	note      sql.Null[string] `property:"set(full_option)"`
}

// NewBin returns an empty bin with the given code.
func NewBin(code string, capacity uint32) *Bin {
	b := &Bin{
		capacity: capacity,
		stock:    treemap.NewWithStringComparator(),
		labels:   make(map[string]string),
		tags:     hashset.New(),
	}
	copy(b.code[:], code)

	return b
}

// Held returns the total quantity in the bin.
func (b *Bin) Held() int {
	total := 0
	for _, v := range b.stock.Values() {
		total += v.(int)
	}

	return total
}

// Slot holds one keyed value of a shelf and the values it held before.
//
//property:get(public),set(public, type="replace")
type Slot[K comparable, V any] struct {
	key     K
	value   V
	history []V `property:"set(type=\"none\")"`
}
