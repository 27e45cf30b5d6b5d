package forecast

import (
	"testing"
	"time"

	"weather-app/internal/domain/model"
)

func entryAt(ts time.Time, tempMin, tempMax float64) model.ForecastEntry {
	return model.ForecastEntry{Timestamp: ts, TempMin: tempMin, TempMax: tempMax}
}

func TestGroupByDayPartitionsByLocalDate(t *testing.T) {
	zone := time.FixedZone("forecast-local", -7*3600)
	entries := []model.ForecastEntry{
		entryAt(time.Date(2026, 3, 1, 21, 0, 0, 0, zone), 1, 5),
		entryAt(time.Date(2026, 3, 2, 0, 0, 0, 0, zone), 0, 4),
		entryAt(time.Date(2026, 3, 2, 3, 0, 0, 0, zone), -1, 3),
	}

	groups := GroupByDay(entries)
	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if len(groups[0].Entries) != 1 || len(groups[1].Entries) != 2 {
		t.Fatalf("unexpected group sizes: %d and %d", len(groups[0].Entries), len(groups[1].Entries))
	}
	if groups[0].Date.Day() != 1 || groups[1].Date.Day() != 2 {
		t.Fatalf("unexpected group dates: %v and %v", groups[0].Date, groups[1].Date)
	}
}

func TestSummarizeDayHighAndLowSpanAllEntries(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tempMax := []float64{10, 12, 15, 14, 13, 11, 9, 8}
	tempMin := []float64{2, 3, 5, 4, 4, 3, 1, 0}

	entries := make([]model.ForecastEntry, 0, len(tempMax))
	for i := range tempMax {
		entries = append(entries, entryAt(date.Add(time.Duration(i*3)*time.Hour), tempMin[i], tempMax[i]))
	}

	summary := SummarizeDay(date, entries)
	if summary.HighTemp != 15 {
		t.Fatalf("HighTemp = %v, want 15", summary.HighTemp)
	}
	if summary.LowTemp != 0 {
		t.Fatalf("LowTemp = %v, want 0", summary.LowTemp)
	}
	if summary.DayOfWeek != "Sun" {
		t.Fatalf("DayOfWeek = %q, want Sun", summary.DayOfWeek)
	}
}

func TestSummarizeDayRepresentativeIsNoonClosest(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []model.ForecastEntry{
		{Timestamp: date.Add(9 * time.Hour), IconID: "03d", Description: "scattered clouds"},
		{Timestamp: date.Add(13 * time.Hour), IconID: "10d", Description: "light rain"},
		{Timestamp: date.Add(18 * time.Hour), IconID: "01n", Description: "clear sky"},
	}

	summary := SummarizeDay(date, entries)
	if summary.RepresentativeIcon != "10d" {
		t.Fatalf("RepresentativeIcon = %q, want 10d", summary.RepresentativeIcon)
	}
	if summary.RepresentativeDescription != "light rain" {
		t.Fatalf("RepresentativeDescription = %q, want light rain", summary.RepresentativeDescription)
	}
}

func TestSummarizeDayNoonTieBreaksToEarlierEntry(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []model.ForecastEntry{
		{Timestamp: date.Add(10 * time.Hour), IconID: "02d"},
		{Timestamp: date.Add(14 * time.Hour), IconID: "04d"},
	}

	summary := SummarizeDay(date, entries)
	if summary.RepresentativeIcon != "02d" {
		t.Fatalf("RepresentativeIcon = %q, want the earlier 02d on a tie", summary.RepresentativeIcon)
	}
}

func TestSummarizeDayMeanPrecipitation(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []model.ForecastEntry{
		{Timestamp: date.Add(6 * time.Hour), PrecipitationProbability: 0.25},
		{Timestamp: date.Add(9 * time.Hour), PrecipitationProbability: 0.75},
		// A missing pop arrives already normalized to 0 and still counts
		// toward the mean's denominator.
		{Timestamp: date.Add(12 * time.Hour), PrecipitationProbability: 0},
		{Timestamp: date.Add(15 * time.Hour), PrecipitationProbability: 0.5},
	}

	summary := SummarizeDay(date, entries)
	if got, want := summary.MeanPrecipitationProbability, 0.375; got != want {
		t.Fatalf("MeanPrecipitationProbability = %v, want %v", got, want)
	}
}

func TestSummarizeDayPartialDay(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []model.ForecastEntry{
		entryAt(date.Add(18*time.Hour), 3, 7),
		entryAt(date.Add(21*time.Hour), 2, 6),
	}

	summary := SummarizeDay(date, entries)
	if summary.HighTemp != 7 || summary.LowTemp != 2 {
		t.Fatalf("partial day summary = high %v low %v, want high 7 low 2", summary.HighTemp, summary.LowTemp)
	}
}

func TestDailySummariesPreserveDayOrder(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	entries := []model.ForecastEntry{
		entryAt(day1, 1, 5),
		entryAt(day2, 2, 6),
	}

	summaries := DailySummaries(entries)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Date.Day() != 1 || summaries[1].Date.Day() != 2 {
		t.Fatalf("summaries out of order: %v, %v", summaries[0].Date, summaries[1].Date)
	}
}

func TestHourlyDaysKeepsEntriesInArrivalOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	entries := []model.ForecastEntry{
		entryAt(base, 1, 5),
		entryAt(base.Add(3*time.Hour), 2, 6),
		entryAt(base.Add(6*time.Hour), 3, 7),
	}

	days := HourlyDays(entries)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Date != "2026-03-01" || days[0].DayOfWeek != "Sun" {
		t.Fatalf("unexpected day header: %q %q", days[0].Date, days[0].DayOfWeek)
	}
	for i, entry := range days[0].Entries {
		if entry.Timestamp != base.Add(time.Duration(i*3)*time.Hour) {
			t.Fatalf("entry %d out of order: %v", i, entry.Timestamp)
		}
	}
}
