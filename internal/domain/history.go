package domain

import "time"

// UsageRecord captures a suggestion the user accepted into their buffer.
type UsageRecord struct {
	SuggestionID string    `json:"suggestion_id"`
	Language     string    `json:"language"`
	Code         string    `json:"code"`
	AcceptedAt   time.Time `json:"accepted_at"`
}

// UsageSummary aggregates acceptances of one suggestion.
type UsageSummary struct {
	Count        int       `json:"count"`
	LastAccepted time.Time `json:"last_accepted"`
}
