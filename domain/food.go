package domain

import "time"

// FoodLogEntry is a single analyzed meal as returned by the backend. The
// nutrition fields and rating are computed server-side; the client only
// displays them.
type FoodLogEntry struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	MessageText string    `json:"message_text"`
	Calories    float64   `json:"calories"`
	Fat         float64   `json:"fat"`
	Protein     float64   `json:"protein"`
	Fiber       float64   `json:"fiber"`
	Rating      float64   `json:"rating"`
	Note        string    `json:"note,omitempty"`
}

// DailySample is one day of the weekly calorie trend. Order within a week
// is meaningful and must be preserved when rendering.
type DailySample struct {
	Day           string  `json:"day"`
	Calories      float64 `json:"calories"`
	AverageRating float64 `json:"averageRating"`
}

// WeeklyStats is the aggregate produced by the backend analytics engine.
type WeeklyStats struct {
	WeeklyScorePercentage float64       `json:"weeklyScorePercentage"`
	GraphData             []DailySample `json:"graphData"`
}
