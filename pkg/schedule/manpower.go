package schedule

import "cloud.google.com/go/civil"

// Manpower holds daily headcounts per trade. Trades lists trade names in the
// order they were first seen; that order drives stacking and legends.
type Manpower struct {
	Trades  []string                          `json:"trades"`
	ByTrade map[string]map[civil.Date]float64 `json:"by_trade"`
}

// NewManpower returns an empty Manpower ready for Add.
func NewManpower() *Manpower {
	return &Manpower{ByTrade: make(map[string]map[civil.Date]float64)}
}

// AddTrade registers a trade without any values, keeping first-seen order.
func (m *Manpower) AddTrade(trade string) {
	if m.ByTrade == nil {
		m.ByTrade = make(map[string]map[civil.Date]float64)
	}
	if _, ok := m.ByTrade[trade]; ok {
		return
	}
	m.ByTrade[trade] = make(map[civil.Date]float64)
	m.Trades = append(m.Trades, trade)
}

// Add accumulates v for trade on day d. Repeated rows for the same trade
// and day add up.
func (m *Manpower) Add(trade string, d civil.Date, v float64) {
	m.AddTrade(trade)
	m.ByTrade[trade][d] += v
}

// Totals returns the sum across trades for every day that has any value.
func (m *Manpower) Totals() map[civil.Date]float64 {
	out := make(map[civil.Date]float64)
	if m == nil {
		return out
	}
	for _, days := range m.ByTrade {
		for d, v := range days {
			out[d] += v
		}
	}
	return out
}

// Empty reports whether no trade has been recorded.
func (m *Manpower) Empty() bool {
	return m == nil || len(m.Trades) == 0
}
