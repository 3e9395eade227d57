package weather

import (
	"math"
	"time"
)

// AggregateDaily collapses a 3-hourly forecast series into per-day
// summaries. Samples group by the calendar date of their timestamp in loc;
// which zone derives the day is the caller's decision, since the raw series
// carries no offset of its own.
//
// Days are emitted in the order their first sample appears, not re-sorted;
// chronological input yields chronological output. The representative
// condition is the first sample of the day — a kept compatibility behavior,
// not a majority vote. No cap is applied here.
func AggregateDaily(samples []RawSample, loc *time.Location) []DailySummary {
	if loc == nil {
		loc = time.Local
	}

	type bucket struct {
		date      time.Time
		maxTemp   float64
		minTemp   float64
		sumHum    float64
		sumWind   float64
		count     int
		condition Condition
	}

	var order []string
	buckets := make(map[string]*bucket)

	for _, s := range samples {
		ts := time.Unix(s.Timestamp, 0).In(loc)
		key := ts.Format("2006-01-02")

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				date:      time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc),
				maxTemp:   s.Temperature,
				minTemp:   s.Temperature,
				condition: s.Condition,
			}
			buckets[key] = b
			order = append(order, key)
		}

		b.maxTemp = math.Max(b.maxTemp, s.Temperature)
		b.minTemp = math.Min(b.minTemp, s.Temperature)
		b.sumHum += s.Humidity
		b.sumWind += s.WindSpeed
		b.count++
	}

	summaries := make([]DailySummary, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		n := float64(b.count)

		summaries = append(summaries, DailySummary{
			Date:         b.date,
			MaxTemp:      int(math.Round(b.maxTemp)),
			MinTemp:      int(math.Round(b.minTemp)),
			AvgHumidity:  int(math.Round(b.sumHum / n)),
			AvgWindSpeed: int(math.Round(b.sumWind / n * 3.6)), // m/s to km/h
			Condition:    b.condition,
		})
	}

	return summaries
}
