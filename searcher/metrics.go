package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one FindMove call.
type SearchMetrics struct {
	Score     int
	Depth     int
	Nodes     int64
	Leaves    int64
	Cutoffs   int64
	TableHits int64
	Duration  time.Duration
}

// Collector accumulates search counters. The counters are atomic so root
// parallel workers can share one collector.
type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	AddTableHit()
	Complete(score, depth int) SearchMetrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	tableHits atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
	c.tableHits.Store(0)
}

func (c *collector) AddNode()     { c.nodes.Add(1) }
func (c *collector) AddLeaf()     { c.leaves.Add(1) }
func (c *collector) AddCutoff()   { c.cutoffs.Add(1) }
func (c *collector) AddTableHit() { c.tableHits.Add(1) }

func (c *collector) Complete(score, depth int) SearchMetrics {
	return SearchMetrics{
		Score:     score,
		Depth:     depth,
		Nodes:     c.nodes.Load(),
		Leaves:    c.leaves.Load(),
		Cutoffs:   c.cutoffs.Load(),
		TableHits: c.tableHits.Load(),
		Duration:  time.Since(c.startTime),
	}
}

// noCollector drops the counters but still reports score and depth, so
// callers that skipped WithMetrics keep a usable result.
type noCollector struct{}

func NewNoCollector() Collector { return noCollector{} }

func (noCollector) Start()       {}
func (noCollector) AddNode()     {}
func (noCollector) AddLeaf()     {}
func (noCollector) AddCutoff()   {}
func (noCollector) AddTableHit() {}
func (noCollector) Complete(score, depth int) SearchMetrics {
	return SearchMetrics{Score: score, Depth: depth}
}
