package api

import (
	"sync"

	"github.com/resumate/resumate/pkg/scoring"
)

// ReportCache keeps recently served analysis reports keyed by analysis id.
// Least recently used reports are evicted first. Every Purge starts a new
// generation; loads that began in an older generation are not cached, so a
// report read before a rescore cannot overwrite the rescored one.
type ReportCache struct {
	mu         sync.Mutex
	capacity   int
	tick       uint64
	generation uint64
	items      map[string]*cachedReport
}

type cachedReport struct {
	result   *scoring.AnalysisResult
	lastUsed uint64
}

// NewReportCache creates a cache holding at most capacity reports.
// A non-positive capacity means 256.
func NewReportCache(capacity int) *ReportCache {
	if capacity <= 0 {
		capacity = 256
	}
	return &ReportCache{
		capacity: capacity,
		items:    make(map[string]*cachedReport, capacity),
	}
}

// Get returns the cached report for id, or nil.
func (c *ReportCache) Get(id string) *scoring.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		return nil
	}
	c.tick++
	item.lastUsed = c.tick
	return item.result
}

// Generation returns the current purge generation. Callers loading a report
// from storage read it first and hand it to PutAt.
func (c *ReportCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Put caches a report in the current generation.
func (c *ReportCache) Put(id string, result *scoring.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(id, result)
}

// PutAt caches a report loaded during generation gen. It reports false and
// drops the report when the cache was purged since.
func (c *ReportCache) PutAt(gen uint64, id string, result *scoring.AnalysisResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return false
	}
	c.put(id, result)
	return true
}

func (c *ReportCache) put(id string, result *scoring.AnalysisResult) {
	c.tick++
	if item, ok := c.items[id]; ok {
		item.result = result
		item.lastUsed = c.tick
		return
	}
	if len(c.items) >= c.capacity {
		c.evict()
	}
	c.items[id] = &cachedReport{result: result, lastUsed: c.tick}
}

// evict drops the least recently used report.
func (c *ReportCache) evict() {
	var (
		victim string
		oldest uint64
		found  bool
	)
	for id, item := range c.items {
		if !found || item.lastUsed < oldest {
			victim, oldest, found = id, item.lastUsed, true
		}
	}
	if found {
		delete(c.items, victim)
	}
}

// Purge drops every report and starts a new generation.
func (c *ReportCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	c.generation++
}

// Len returns the number of cached reports.
func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
