package scheduling

import (
	"math"
	"time"
)

// CapacityBucket is the load of one day against its minute budget.
type CapacityBucket struct {
	DayIndex     int `json:"dayIndex"`
	UsedMinutes  int `json:"usedMinutes"`
	TotalMinutes int `json:"totalMinutes"`
}

// Over reports whether the day is scheduled beyond its capacity.
func (b CapacityBucket) Over() bool {
	return b.UsedMinutes > b.TotalMinutes
}

// Percent is the share of capacity in use, capped at 100. A day without
// capacity reports 0.
func (b CapacityBucket) Percent() int {
	if b.TotalMinutes <= 0 {
		return 0
	}
	pct := int(math.Round(float64(b.UsedMinutes) / float64(b.TotalMinutes) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// AggregateCapacity buckets scheduled minutes per day of the week starting
// at weekStart, every day sharing the same perDayTotal.
func AggregateCapacity(sessions []SessionTimes, weekStart time.Time, perDayTotal int) [DaysPerWeek]CapacityBucket {
	var totals [DaysPerWeek]int
	for i := range totals {
		totals[i] = perDayTotal
	}
	return AggregateCapacityWithTotals(sessions, weekStart, totals)
}

// AggregateCapacityWithTotals is AggregateCapacity with a capacity per day.
// A session counts towards the day its scheduled start falls in; sessions
// starting outside the week are ignored.
func AggregateCapacityWithTotals(sessions []SessionTimes, weekStart time.Time, totals [DaysPerWeek]int) [DaysPerWeek]CapacityBucket {
	var buckets [DaysPerWeek]CapacityBucket
	for i := range buckets {
		buckets[i] = CapacityBucket{DayIndex: i, TotalMinutes: totals[i]}
	}

	for _, s := range sessions {
		idx := DayIndexOf(weekStart, s.ScheduledStart)
		if idx < 0 || idx >= DaysPerWeek {
			continue
		}
		buckets[idx].UsedMinutes += roundMinutes(s.ScheduledEnd.Sub(s.ScheduledStart))
	}
	return buckets
}
