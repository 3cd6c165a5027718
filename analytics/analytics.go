// Package analytics records page visits and computes visitor statistics.
//
// Visits are append-only rows keyed by an opaque, client-generated session
// identifier; "unique visitors" means distinct session identifiers. All
// calendar boundaries (days, hours) are computed in UTC.
package analytics

import (
	"sort"
	"time"
)

// Trailing windows the aggregator reports on.
const (
	TotalWindow  = 7 * 24 * time.Hour
	RecentWindow = time.Hour
)

// VisitEvent is one recorded page view. Events are immutable: CreatedAt is
// assigned by the store at insert time and never changes afterwards.
type VisitEvent struct {
	ID        int64     `json:"-"`
	SessionID string    `json:"sessionId"`
	PagePath  string    `json:"pagePath"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatsSummary holds aggregated visitor statistics. It is derived on every
// query and never persisted.
type StatsSummary struct {
	TotalVisitors  int          `json:"totalVisitors"`
	RecentVisitors int          `json:"recentVisitors"`
	DailyStats     []DailyStat  `json:"dailyStats"`
	HourlyStats    []HourlyStat `json:"hourlyStats"`
}

// DailyStat is the distinct-session count for one calendar date.
type DailyStat struct {
	Date     string `json:"date"`
	Visitors int    `json:"visitors"`
}

// HourlyStat is the distinct-session count for one hour of the current day.
type HourlyStat struct {
	Hour     int `json:"hour"`
	Visitors int `json:"visitors"`
}

// ComputeStats derives a StatsSummary from raw visit events in a single pass.
// It is a pure function of now and events: callers pass the query time
// explicitly, so results are deterministic and repeatable.
//
// Events older than the 7-day window are ignored, so callers may pass either
// a pre-filtered slice or the full store contents. DailyStats is sparse
// (dates with no events are omitted, ascending date order) while HourlyStats
// is dense (always 24 entries, hours without events report zero). The display
// layer relies on that asymmetry.
func ComputeStats(now time.Time, events []VisitEvent) StatsSummary {
	now = now.UTC()
	totalCutoff := now.Add(-TotalWindow)
	recentCutoff := now.Add(-RecentWindow)
	today := now.Format("2006-01-02")

	total := make(map[string]struct{})
	recent := make(map[string]struct{})
	byDate := make(map[string]map[string]struct{})
	var byHour [24]map[string]struct{}

	for _, e := range events {
		ts := e.CreatedAt.UTC()
		if ts.Before(totalCutoff) {
			continue
		}

		total[e.SessionID] = struct{}{}
		if !ts.Before(recentCutoff) {
			recent[e.SessionID] = struct{}{}
		}

		date := ts.Format("2006-01-02")
		if byDate[date] == nil {
			byDate[date] = make(map[string]struct{})
		}
		byDate[date][e.SessionID] = struct{}{}

		if date == today {
			h := ts.Hour()
			if byHour[h] == nil {
				byHour[h] = make(map[string]struct{})
			}
			byHour[h][e.SessionID] = struct{}{}
		}
	}

	daily := make([]DailyStat, 0, len(byDate))
	for date, sessions := range byDate {
		daily = append(daily, DailyStat{Date: date, Visitors: len(sessions)})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	hourly := make([]HourlyStat, 24)
	for h := range hourly {
		hourly[h] = HourlyStat{Hour: h, Visitors: len(byHour[h])}
	}

	return StatsSummary{
		TotalVisitors:  len(total),
		RecentVisitors: len(recent),
		DailyStats:     daily,
		HourlyStats:    hourly,
	}
}
