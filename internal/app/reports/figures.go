package reports

import (
	"math"
	"strconv"
)

// ZeroMoney is the rendering of an empty money statistic
const ZeroMoney = "0.00"

// Figure is a statistic formatted for display. Money figures carry Amount, every other
// figure carries Count.
type Figure struct {
	Name   string
	Count  int64
	Amount string
	Money  bool
}

// Text renders the figure as a string regardless of its format
func (f Figure) Text() string {
	if f.Money {
		return f.Amount
	}
	return strconv.FormatInt(f.Count, 10)
}

// Figures lists a report's statistics in declaration order
type Figures []Figure

// Count returns the named integer figure, 0 when absent
func (fs Figures) Count(name string) int64 {
	for _, f := range fs {
		if f.Name == name {
			return f.Count
		}
	}
	return 0
}

// Amount returns the named money figure, "0.00" when absent
func (fs Figures) Amount(name string) string {
	for _, f := range fs {
		if f.Name == name && f.Money {
			return f.Amount
		}
	}
	return ZeroMoney
}

// formatStatistics turns the numeric statistics into display figures. A statistic missing
// from stats renders as its zero value, which is also how the failure fallback is built.
func formatStatistics(def *Definition, stats Statistics) Figures {
	figures := make(Figures, 0, len(def.Statistics))
	for _, s := range def.Statistics {
		value := stats[s.Name]
		f := Figure{Name: s.Name}
		switch s.Format {
		case FormatMoney:
			f.Money = true
			f.Amount = strconv.FormatFloat(value, 'f', 2, 64)
		case FormatRounded:
			f.Count = int64(math.Round(value))
		default:
			f.Count = int64(value)
		}
		figures = append(figures, f)
	}
	return figures
}
