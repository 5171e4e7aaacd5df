// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Put("key", 42)
//	value, ok := c.Get("key")
//
// A Cache is safe for concurrent use and must not be copied after
// creation.
package cache
