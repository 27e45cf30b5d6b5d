package forecast

import (
	"time"

	"weather-app/internal/domain/model"
)

const dateKeyLayout = "2006-01-02"

// DayGroup holds one calendar day of forecast entries in arrival order.
type DayGroup struct {
	Date    time.Time
	Entries []model.ForecastEntry
}

// GroupByDay partitions forecast entries by the calendar date of their
// timestamp in the forecast location's local time. Day order follows first
// appearance in the input and arrival order is preserved within each day.
func GroupByDay(entries []model.ForecastEntry) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)

	for _, entry := range entries {
		key := entry.Timestamp.Format(dateKeyLayout)
		i, ok := index[key]
		if !ok {
			year, month, day := entry.Timestamp.Date()
			groups = append(groups, DayGroup{
				Date: time.Date(year, month, day, 0, 0, 0, 0, entry.Timestamp.Location()),
			})
			i = len(groups) - 1
			index[key] = i
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}

	return groups
}

// SummarizeDay reduces one day's entries to a DailySummary. The high and low
// span every entry of the day, the representative icon and description come
// from the entry whose local hour is closest to noon (ties resolved in favor
// of the earlier entry in sequence order), and the precipitation probability
// is the day's mean with missing values already normalized to 0. A partial
// day, down to a single entry, is summarized from whatever entries exist.
func SummarizeDay(date time.Time, entries []model.ForecastEntry) model.DailySummary {
	summary := model.DailySummary{
		Date:      date,
		DayOfWeek: date.Format("Mon"),
	}
	if len(entries) == 0 {
		return summary
	}

	high := entries[0].TempMax
	low := entries[0].TempMin
	representative := entries[0]
	bestDistance := noonDistance(entries[0])
	var popSum float64

	for _, entry := range entries[1:] {
		if entry.TempMax > high {
			high = entry.TempMax
		}
		if entry.TempMin < low {
			low = entry.TempMin
		}
		if d := noonDistance(entry); d < bestDistance {
			bestDistance = d
			representative = entry
		}
	}
	for _, entry := range entries {
		popSum += entry.PrecipitationProbability
	}

	summary.HighTemp = high
	summary.LowTemp = low
	summary.RepresentativeIcon = representative.IconID
	summary.RepresentativeDescription = representative.Description
	summary.MeanPrecipitationProbability = popSum / float64(len(entries))
	return summary
}

// DailySummaries groups entries by day and summarizes each group, preserving
// day order.
func DailySummaries(entries []model.ForecastEntry) []model.DailySummary {
	groups := GroupByDay(entries)
	summaries := make([]model.DailySummary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, SummarizeDay(group.Date, group.Entries))
	}
	return summaries
}

// HourlyDays reshapes grouped entries into the intraday display payload.
func HourlyDays(entries []model.ForecastEntry) []model.HourlyDay {
	groups := GroupByDay(entries)
	days := make([]model.HourlyDay, 0, len(groups))
	for _, group := range groups {
		days = append(days, model.HourlyDay{
			Date:      group.Date.Format(dateKeyLayout),
			DayOfWeek: group.Date.Format("Mon"),
			Entries:   group.Entries,
		})
	}
	return days
}

func noonDistance(entry model.ForecastEntry) int {
	d := entry.Timestamp.Hour() - 12
	if d < 0 {
		return -d
	}
	return d
}
