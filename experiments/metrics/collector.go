package metrics

import (
	"sync/atomic"
	"time"
)

// How a move was chosen.
const (
	SourceNone     = "none"
	SourceOpening  = "opening"
	SourceSwap     = "swap"
	SourceWin      = "win"
	SourceBlock    = "block"
	SourceSearch   = "search"
	SourceRandom   = "random"
	SourceHuman    = "human"
	SourceFallback = "fallback"
)

type SearchMetric struct {
	Source   string
	Depth    int
	Duration time.Duration
	Nodes    int
	Leaves   int
	Cutoffs  int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	Swapped        bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	SetDepth(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	depth     atomic.Int32
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.depth.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    int(m.depth.Load()),
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
