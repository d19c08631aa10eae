package entities

// Inventory is a multiset of item names that remembers the order in which
// items were first taken.
type Inventory struct {
	order  []string
	counts map[string]int
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{counts: make(map[string]int)}
}

// Add increments the count for item
func (i *Inventory) Add(item string) {
	if i.counts[item] == 0 {
		i.order = append(i.order, item)
	}
	i.counts[item]++
}

// Remove decrements the count for item and drops the entry at zero. It
// reports false when the item is not held.
func (i *Inventory) Remove(item string) bool {
	count, ok := i.counts[item]
	if !ok {
		return false
	}
	if count > 1 {
		i.counts[item] = count - 1
		return true
	}

	delete(i.counts, item)
	for idx, name := range i.order {
		if name == item {
			i.order = append(i.order[:idx], i.order[idx+1:]...)
			break
		}
	}
	return true
}

// Count returns how many of item are held
func (i *Inventory) Count(item string) int {
	return i.counts[item]
}

// Items returns the held item names in insertion order
func (i *Inventory) Items() []string {
	items := make([]string, len(i.order))
	copy(items, i.order)
	return items
}

// Len returns the number of distinct items held
func (i *Inventory) Len() int {
	return len(i.order)
}
