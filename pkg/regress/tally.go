package regress

import (
	"fmt"
	"sort"
)

// Order controls the order of report lines.
type Order string

const (
	OrderName      Order = "name"       // ascending by name
	OrderCount     Order = "count"      // descending by run count, ties by name
	OrderFirstSeen Order = "first-seen" // order of first appearance
)

// ParseOrder converts a flag or config value to an Order. Empty means OrderName.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderName:
		return OrderName, nil
	case OrderCount, OrderFirstSeen:
		return Order(s), nil
	default:
		return "", fmt.Errorf("unknown order %q (expected name, count, first-seen)", s)
	}
}

// Entry is one unique test name and how many times it ran.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tally accumulates extracted names. The ordered list, duplicates included,
// is the source of truth for run counts.
type Tally struct {
	names []string
}

// Add records one run of name.
func (t *Tally) Add(name string) {
	t.names = append(t.names, name)
}

// ordered returns a copy of every recorded name in the order it was added.
func (t *Tally) ordered() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Total is the number of recorded runs.
func (t *Tally) Total() int { return len(t.names) }

// Unique returns the distinct names in first-seen order.
func (t *Tally) Unique() []string {
	seen := make(map[string]struct{}, len(t.names))
	var out []string
	for _, n := range t.names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Count returns how many times name was recorded.
func (t *Tally) Count(name string) int {
	n := 0
	for _, v := range t.names {
		if v == name {
			n++
		}
	}
	return n
}

// Entries returns one Entry per unique name, sorted by order.
func (t *Tally) Entries(order Order) []Entry {
	unique := t.Unique()
	entries := make([]Entry, 0, len(unique))
	for _, n := range unique {
		entries = append(entries, Entry{Name: n, Count: t.Count(n)})
	}

	switch order {
	case OrderFirstSeen:
	case OrderCount:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Name < entries[j].Name
		})
	default:
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}
	return entries
}
