package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(t time.Time, temp float64) RawSample {
	return RawSample{
		Timestamp:   t.Unix(),
		Temperature: temp,
	}
}

func TestAggregateDailyGroupsByCalendarDay(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	var samples []RawSample
	for h := 0; h < 24; h += 3 {
		samples = append(samples, sampleAt(day1.Add(time.Duration(h)*time.Hour), 10))
	}
	for h := 0; h < 24; h += 3 {
		samples = append(samples, sampleAt(day2.Add(time.Duration(h)*time.Hour), 12))
	}

	days := AggregateDaily(samples, time.UTC)

	require.Len(t, days, 2)
	assert.Equal(t, day1, days[0].Date)
	assert.Equal(t, day2, days[1].Date)
}

func TestAggregateDailyMinMax(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	samples := []RawSample{
		sampleAt(base.Add(3*time.Hour), 4.4),
		sampleAt(base.Add(6*time.Hour), 9.6),
		sampleAt(base.Add(9*time.Hour), 7.1),
	}

	days := AggregateDaily(samples, time.UTC)

	require.Len(t, days, 1)
	assert.Equal(t, 10, days[0].MaxTemp)
	assert.Equal(t, 4, days[0].MinTemp)
	assert.GreaterOrEqual(t, days[0].MaxTemp, days[0].MinTemp)
}

func TestAggregateDailySingleSample(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	days := AggregateDaily([]RawSample{sampleAt(base, 3.7)}, time.UTC)

	require.Len(t, days, 1)
	assert.Equal(t, 4, days[0].MaxTemp)
	assert.Equal(t, 4, days[0].MinTemp)
}

func TestAggregateDailyEmptyInput(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil, time.UTC))
	assert.Empty(t, AggregateDaily([]RawSample{}, time.UTC))
}

func TestAggregateDailyWindConversion(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	samples := []RawSample{
		{Timestamp: base.Unix(), WindSpeed: 5},
		{Timestamp: base.Add(3 * time.Hour).Unix(), WindSpeed: 7},
	}

	days := AggregateDaily(samples, time.UTC)

	require.Len(t, days, 1)
	// mean 6 m/s -> 21.6 km/h, rounded
	assert.Equal(t, 22, days[0].AvgWindSpeed)
}

func TestAggregateDailyAverageHumidity(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	samples := []RawSample{
		{Timestamp: base.Unix(), Humidity: 60},
		{Timestamp: base.Add(3 * time.Hour).Unix(), Humidity: 71},
	}

	days := AggregateDaily(samples, time.UTC)

	require.Len(t, days, 1)
	assert.Equal(t, 66, days[0].AvgHumidity)
}

func TestAggregateDailyFirstSampleCondition(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rain := Condition{Code: 500, Text: "rain"}
	clear := Condition{Code: 800, Text: "clear"}

	samples := []RawSample{
		{Timestamp: base.Unix(), Condition: rain},
		{Timestamp: base.Add(3 * time.Hour).Unix(), Condition: clear},
		{Timestamp: base.Add(6 * time.Hour).Unix(), Condition: clear},
	}

	days := AggregateDaily(samples, time.UTC)

	require.Len(t, days, 1)
	// First sample of the day wins, not the majority.
	assert.Equal(t, rain, days[0].Condition)
}

func TestAggregateDailyFirstEncounterOrder(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// Later day appears first in the input; output keeps that order.
	samples := []RawSample{
		sampleAt(day2, 8),
		sampleAt(day1, 6),
		sampleAt(day2.Add(3*time.Hour), 9),
	}

	days := AggregateDaily(samples, time.UTC)

	require.Len(t, days, 2)
	assert.Equal(t, day2.Truncate(24*time.Hour), days[0].Date)
	assert.Equal(t, day1.Truncate(24*time.Hour), days[1].Date)
}

func TestAggregateDailyZoneDecidesDayBoundary(t *testing.T) {
	// 23:30 UTC on the 10th is already the 11th one hour east.
	east := time.FixedZone("east", 3600)
	ts := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	utcDays := AggregateDaily([]RawSample{sampleAt(ts, 5)}, time.UTC)
	eastDays := AggregateDaily([]RawSample{sampleAt(ts, 5)}, east)

	require.Len(t, utcDays, 1)
	require.Len(t, eastDays, 1)
	assert.Equal(t, 10, utcDays[0].Date.Day())
	assert.Equal(t, 11, eastDays[0].Date.Day())
}
