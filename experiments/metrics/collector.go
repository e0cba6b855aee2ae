package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Agent        string
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int // playouts for flat Monte Carlo, evaluations for MCTS
	FullPlayouts int
	Expansions   int
}

type MoveMetric struct {
	Step   int
	Player game.Cell
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	ID         string
	Winner     game.Cell // Empty on a draw
	Black      int
	White      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(agent string)
	AddEpisode()
	AddFullPlayout()
	AddExpansion()
	Complete() SearchMetric
}

type collector struct {
	agent        string
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	expansions   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(agent string) {
	m.agent = agent
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.expansions.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Agent:        m.agent,
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Expansions:   int(m.expansions.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(agent string)     {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
