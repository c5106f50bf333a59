package metrics

import (
	"sync/atomic"
	"time"
)

// PathMetric measures one path generation and selection step.
type PathMetric struct {
	Duration  time.Duration
	Generated int // Heuristic candidates
	Explored  int // Extra candidates from exploration, after deduplication
	Returned  int
	Anomalies int
}

type TurnMetric struct {
	Turn   int
	Player string
	Score  int // Score of the executed path
	Lore   int // Player lore after the turn
	PathMetric
}

type GameMetric struct {
	RunID       string
	FirstPlayer string
	Winner      string // "" on a tie
	Lore1       int
	Lore2       int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalTurns  int
}

type Collector interface {
	Start()
	SetGenerated(generated, explored int)
	SetReturned(returned int)
	AddAnomaly()
	Complete() PathMetric
}

type collector struct {
	startTime time.Time
	generated atomic.Int32
	explored  atomic.Int32
	returned  atomic.Int32
	anomalies atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the collector for a new turn.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.generated.Store(0)
	m.explored.Store(0)
	m.returned.Store(0)
	m.anomalies.Store(0)
}

func (m *collector) SetGenerated(generated, explored int) {
	m.generated.Store(int32(generated))
	m.explored.Store(int32(explored))
}

func (m *collector) SetReturned(returned int) {
	m.returned.Store(int32(returned))
}

func (m *collector) AddAnomaly() {
	m.anomalies.Add(1)
}

func (m *collector) Complete() PathMetric {
	return PathMetric{
		Duration:  time.Since(m.startTime),
		Generated: int(m.generated.Load()),
		Explored:  int(m.explored.Load()),
		Returned:  int(m.returned.Load()),
		Anomalies: int(m.anomalies.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                               {}
func (m *dummyCollector) SetGenerated(generated, explored int) {}
func (m *dummyCollector) SetReturned(returned int)             {}
func (m *dummyCollector) AddAnomaly()                          {}
func (m *dummyCollector) Complete() PathMetric                 { return PathMetric{} }
