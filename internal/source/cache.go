package source

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// documentCache is an in-memory LRU of fetched documents keyed by location,
// with time-based expiration.
type documentCache struct {
	lru *expirable.LRU[string, *Document]
}

func newDocumentCache(size int, ttl time.Duration) *documentCache {
	return &documentCache{
		lru: expirable.NewLRU[string, *Document](size, nil, ttl),
	}
}

func (c *documentCache) Get(location string) (*Document, bool) {
	return c.lru.Get(location)
}

func (c *documentCache) Set(doc *Document) {
	c.lru.Add(doc.Location, doc)
}

func (c *documentCache) Invalidate(location string) {
	c.lru.Remove(location)
}

func (c *documentCache) Len() int {
	return c.lru.Len()
}
