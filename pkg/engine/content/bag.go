package content

import (
	"github.com/zyedidia/generic/mapset"
)

// Bag is an ordered, fixed-length collection of units. When UseIDs is set,
// pairing between cells is resolved by unit ID instead of position.
type Bag struct {
	units  []*Unit
	useIDs bool
}

// NewBag creates a bag holding a copy of the given slice
func NewBag(units []*Unit, useIDs bool) *Bag {
	cp := make([]*Unit, len(units))
	copy(cp, units)
	return &Bag{units: cp, useIDs: useIDs}
}

// TextBag builds a positional bag of text units, ids following the index
func TextBag(texts ...string) *Bag {
	units := make([]*Unit, len(texts))
	for i, s := range texts {
		units[i] = Text(i, s)
	}
	return &Bag{units: units}
}

// Len returns the number of units in the bag
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.units)
}

// UseIDs reports whether pairing uses unit ids
func (b *Bag) UseIDs() bool {
	return b != nil && b.useIDs
}

// At returns the unit at index i, or nil if out of range
func (b *Bag) At(i int) *Unit {
	if b == nil || i < 0 || i >= len(b.units) {
		return nil
	}
	return b.units[i]
}

// Units returns a copy of the bag contents
func (b *Bag) Units() []*Unit {
	if b == nil {
		return nil
	}
	cp := make([]*Unit, len(b.units))
	copy(cp, b.units)
	return cp
}

// HasDistinctIDs returns true if no two non-nil units share an id. Bags used
// with UseIDs need this to pair cells unambiguously.
func (b *Bag) HasDistinctIDs() bool {
	seen := mapset.New[int]()
	for _, u := range b.Units() {
		if u == nil {
			continue
		}
		if seen.Has(u.ID) {
			return false
		}
		seen.Put(u.ID)
	}
	return true
}
