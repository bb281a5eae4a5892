// Package cache keeps rendered dashboard pages until their path is invalidated.
package cache

import (
	"net/http"
	"sync"
)

// DefaultMaxEntries bounds the number of pages kept across all paths.
const DefaultMaxEntries = 512

type Page struct {
	Status int
	Header http.Header
	Body   []byte
}

// PageCache stores pages by path and then by a request key, so a path can be
// dropped together with every variant of it. Each path carries a generation
// that InvalidatePath bumps; a page rendered under an older generation is not stored.
type PageCache struct {
	mu         sync.RWMutex
	pages      map[string]map[string]Page
	gen        map[string]uint64
	size       int
	maxEntries int
}

func NewPageCache(maxEntries int) *PageCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &PageCache{
		pages:      make(map[string]map[string]Page),
		gen:        make(map[string]uint64),
		maxEntries: maxEntries,
	}
}

func (c *PageCache) Get(path, key string) (Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page, ok := c.pages[path][key]
	return page, ok
}

// Generation returns the current generation of path.
func (c *PageCache) Generation(path string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.gen[path]
}

// Set stores page unless path was invalidated after gen was read.
// A full cache is emptied before the new page goes in.
func (c *PageCache) Set(path, key string, gen uint64, page Page) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen[path] != gen {
		return false
	}

	variants, ok := c.pages[path]
	if !ok {
		variants = make(map[string]Page)
		c.pages[path] = variants
	}
	if _, exists := variants[key]; !exists {
		if c.size >= c.maxEntries {
			c.pages = map[string]map[string]Page{path: {}}
			variants = c.pages[path]
			c.size = 0
		}
		c.size++
	}
	variants[key] = page
	return true
}

// InvalidatePath drops every cached variant of path.
func (c *PageCache) InvalidatePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen[path]++
	c.size -= len(c.pages[path])
	delete(c.pages, path)
}

func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.size
}
