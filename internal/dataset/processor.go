// Package dataset runs the sort/filter/statistics pipeline over integer
// datasets.
package dataset

import (
	"sync"

	"github.com/msto63/uvroot/foundation/utils/slicex"
)

// Processor accumulates items for analysis. It is safe for concurrent use.
type Processor struct {
	mu    sync.RWMutex
	data  []int
	cache map[string]interface{}
}

// NewProcessor creates an empty processor
func NewProcessor() *Processor {
	return &Processor{cache: make(map[string]interface{})}
}

// Add appends an item and returns the new length
func (p *Processor) Add(item int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = append(p.data, item)
	delete(p.cache, cacheKeySorted)
	return len(p.data)
}

// Items returns a copy of the items in insertion order
func (p *Processor) Items() []int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]int{}, p.data...)
}

// Len returns the number of items
func (p *Processor) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.data)
}

// Clear removes all items and cached values
func (p *Processor) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = nil
	p.cache = make(map[string]interface{})
}

const cacheKeySorted = "sorted"

// Sorted returns the items in ascending order, cached until the next Add
func (p *Processor) Sorted() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.cache[cacheKeySorted].([]int); ok {
		return slicex.Clone(v)
	}
	sorted := slicex.Sort(p.data)
	p.cache[cacheKeySorted] = sorted
	return slicex.Clone(sorted)
}

// Populate adds every item and returns how many were added
func Populate(p *Processor, items []int) int {
	for _, item := range items {
		p.Add(item)
	}
	return len(items)
}

// SortData returns ascending and descending copies
func SortData(data []int) (asc, desc []int) {
	return slicex.Sort(data), slicex.SortDesc(data)
}

// FilterData splits data into values strictly above threshold and values at
// or below it, both in input order
func FilterData(data []int, threshold float64) (above, below []int) {
	return slicex.Partition(data, func(v int) bool { return float64(v) > threshold })
}
