package aggregate

import (
	"slices"
	"strings"
)

type Group[T any] struct {
	Key   string `json:"key"`
	Items []T    `json:"items"`
}

// Groups keeps records bucketed by key. Keys are remembered in the order
// they were first seen, and each bucket keeps its members in input order,
// so iteration never depends on map order.
type Groups[T any] struct {
	keys    []string
	index   map[string]int
	buckets [][]T
}

func GroupBy[T any](items []T, key func(T) string) *Groups[T] {
	g := &Groups[T]{
		keys:  make([]string, 0),
		index: make(map[string]int),
	}
	for _, item := range items {
		g.add(key(item), item)
	}
	return g
}

func (g *Groups[T]) add(key string, item T) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.keys)
		g.index[key] = i
		g.keys = append(g.keys, key)
		g.buckets = append(g.buckets, nil)
	}
	g.buckets[i] = append(g.buckets[i], item)
}

func (g *Groups[T]) Len() int {
	return len(g.keys)
}

func (g *Groups[T]) IsEmpty() bool {
	return len(g.keys) == 0
}

// Keys returns the keys in first-seen order.
func (g *Groups[T]) Keys() []string {
	return slices.Clone(g.keys)
}

func (g *Groups[T]) Get(key string) ([]T, bool) {
	i, ok := g.index[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(g.buckets[i]), true
}

// Entries returns the groups in first-seen key order.
func (g *Groups[T]) Entries() []Group[T] {
	entries := make([]Group[T], 0, len(g.keys))
	for i, key := range g.keys {
		entries = append(entries, Group[T]{
			Key:   key,
			Items: slices.Clone(g.buckets[i]),
		})
	}
	return entries
}

// Sorted returns the groups ordered by cmp applied to their keys.
// The sort is stable, keys cmp finds equal stay in first-seen order.
func (g *Groups[T]) Sorted(cmp func(a, b string) int) []Group[T] {
	entries := g.Entries()
	slices.SortStableFunc(entries, func(a, b Group[T]) int {
		return cmp(a.Key, b.Key)
	})
	return entries
}

func Ascending(a, b string) int {
	return strings.Compare(a, b)
}

func Descending(a, b string) int {
	return strings.Compare(b, a)
}

// Flatten concatenates the items of groups in the order given.
func Flatten[T any](groups []Group[T]) []T {
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	flat := make([]T, 0, total)
	for _, g := range groups {
		flat = append(flat, g.Items...)
	}
	return flat
}
