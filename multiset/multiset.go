// Package multiset implements a counting set: a map of keys to
// occurrence counts with a running total, the frequency structure
// behind the Jaccard similarity in the distance package.
package multiset

import (
	"iter"
	"maps"
)

// Multiset counts occurrences of keys and keeps the total number of
// insertions alongside the per-key counts, so similarity ratios never
// have to re-walk the map to sum it.
type Multiset[K comparable] struct {
	counts map[K]uint32
	total  uint32
}

// New returns an empty multiset.
func New[K comparable]() *Multiset[K] {
	return &Multiset[K]{counts: make(map[K]uint32)}
}

// Of returns a multiset holding the given keys, one occurrence each per
// appearance.
func Of[K comparable](keys ...K) *Multiset[K] {
	m := New[K]()
	for _, k := range keys {
		m.Insert(k)
	}
	return m
}

// Collect drains a key sequence into a multiset.
func Collect[K comparable](seq iter.Seq[K]) *Multiset[K] {
	m := New[K]()
	for k := range seq {
		m.Insert(k)
	}
	return m
}

// CollectCounts drains a (key, count) sequence into a multiset.
// Repeated keys accumulate.
func CollectCounts[K comparable](seq iter.Seq2[K, uint32]) *Multiset[K] {
	m := New[K]()
	for k, n := range seq {
		m.InsertCount(k, n)
	}
	return m
}

// Insert adds one occurrence of k and returns its new count.
func (m *Multiset[K]) Insert(k K) uint32 {
	return m.InsertCount(k, 1)
}

// InsertCount adds n occurrences of k and returns its new count.
func (m *Multiset[K]) InsertCount(k K, n uint32) uint32 {
	m.total += n
	m.counts[k] += n
	return m.counts[k]
}

// Count returns the number of occurrences of k, 0 when absent.
func (m *Multiset[K]) Count(k K) uint32 {
	return m.counts[k]
}

// Contains reports whether k occurs in the multiset.
func (m *Multiset[K]) Contains(k K) bool {
	_, ok := m.counts[k]
	return ok
}

// Len returns the number of distinct keys.
func (m *Multiset[K]) Len() int {
	return len(m.counts)
}

// IsEmpty reports whether the multiset holds no keys.
func (m *Multiset[K]) IsEmpty() bool {
	return len(m.counts) == 0
}

// Total returns the number of occurrences across all keys.
func (m *Multiset[K]) Total() uint32 {
	return m.total
}

// Keys returns the distinct keys in arbitrary order.
func (m *Multiset[K]) Keys() iter.Seq[K] {
	return maps.Keys(m.counts)
}

// All returns the distinct keys with their counts in arbitrary order.
func (m *Multiset[K]) All() iter.Seq2[K, uint32] {
	return maps.All(m.counts)
}

// Intersect returns a new multiset holding the keys present in both m
// and o, each counted with the minimum of the two counts. The smaller
// side is the one walked.
func (m *Multiset[K]) Intersect(o *Multiset[K]) *Multiset[K] {
	small, large := m, o
	if large.Len() < small.Len() {
		small, large = large, small
	}

	out := New[K]()
	for k, n := range small.counts {
		if n2, ok := large.counts[k]; ok {
			out.InsertCount(k, min(n, n2))
		}
	}
	return out
}
