package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry []Rule
	byID     = make(map[string]Rule)
	mu       sync.RWMutex
)

func categoryRank(c Category) int {
	for i, cat := range CategoryOrder {
		if cat == c {
			return i
		}
	}
	return len(CategoryOrder)
}

// Register adds a rule to the registry. Rules self-register from init() in
// internal/rules/checks; registration sequence within a category is the
// tie-break for registry order.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := byID[r.ID()]; exists {
		panic(fmt.Sprintf("rule %s already registered", r.ID()))
	}
	if r.Weight() <= 0 {
		panic(fmt.Sprintf("rule %s has non-positive weight %d", r.ID(), r.Weight()))
	}
	byID[r.ID()] = r
	registry = append(registry, r)
}

// List returns all rules in registry order: category rank first, then
// registration sequence. This order is canonical for evaluation, rendering,
// and tie-breaking.
func List() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Rule, len(registry))
	copy(out, registry)
	sort.SliceStable(out, func(i, j int) bool {
		return categoryRank(out[i].Category()) < categoryRank(out[j].Category())
	})
	return out
}

// Resolve returns the rules matching a comma-separated ID selector.
// An empty selector means all rules.
func Resolve(selector string) ([]Rule, error) {
	if strings.TrimSpace(selector) == "" {
		return List(), nil
	}

	mu.RLock()
	defer mu.RUnlock()
	var selected []Rule
	for _, id := range strings.Split(selector, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("rule not found: %s", id)
		}
		selected = append(selected, r)
	}
	return selected, nil
}
