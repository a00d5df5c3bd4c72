package item

import (
	"errors"

	"golang.org/x/text/cases"
)

// Capacity is the number of inventory slots.
const Capacity = 8

var (
	ErrInventoryFull = errors.New("inventory is full")
	ErrItemNotFound  = errors.New("item not found")
)

// Inventory is a fixed array of slots. Empty slots hold the zero Item.
type Inventory struct {
	slots [Capacity]Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add places the item in the first empty slot and returns its index.
// A full inventory returns ErrInventoryFull and is left unchanged.
func (inv *Inventory) Add(it Item) (int, error) {
	for i := range inv.slots {
		if inv.slots[i].IsZero() {
			inv.slots[i] = it
			return i, nil
		}
	}
	return -1, ErrInventoryFull
}

// Remove clears the slot and returns what it held.
// The boolean is false if the index was out of range or the slot was empty.
func (inv *Inventory) Remove(index int) (Item, bool) {
	if index < 0 || index >= Capacity {
		return Item{}, false
	}
	prior := inv.slots[index]
	inv.slots[index] = Item{}
	return prior, !prior.IsZero()
}

// SameName reports whether two item names match under Unicode case folding.
func SameName(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// FindByName returns the index of the first item whose name matches,
// ignoring case. It returns -1 if there is none.
func (inv *Inventory) FindByName(name string) int {
	for i, it := range inv.slots {
		if !it.IsZero() && SameName(it.Name, name) {
			return i
		}
	}
	return -1
}

// Get returns the item in the slot, or false if it is empty or out of range.
func (inv *Inventory) Get(index int) (Item, bool) {
	if index < 0 || index >= Capacity {
		return Item{}, false
	}
	it := inv.slots[index]
	return it, !it.IsZero()
}

// Slots returns a copy of every slot in order, including empty ones.
func (inv *Inventory) Slots() []Item {
	out := make([]Item, Capacity)
	copy(out, inv.slots[:])
	return out
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	n := 0
	for _, it := range inv.slots {
		if !it.IsZero() {
			n++
		}
	}
	return n
}

// IsFull returns true when no slot is free.
func (inv *Inventory) IsFull() bool {
	return inv.Count() == Capacity
}

// Use finds an item by name, applies it to the target, and removes it.
// It returns ErrItemNotFound without touching anything if no item matches.
func (inv *Inventory) Use(name string, target Target) (Item, int, error) {
	idx := inv.FindByName(name)
	if idx < 0 {
		return Item{}, 0, ErrItemNotFound
	}
	it, _ := inv.Remove(idx)
	return it, it.Apply(target), nil
}
