package domain

import "time"

// Outcome classifies what happened to a single delivery attempt. The notifier
// collapses it to a bool at the public boundary; logs and the attempt history
// keep the detail so operators can tell "failed" apart from "skipped".
type Outcome string

const (
	OutcomeSent      Outcome = "sent"
	OutcomeRejected  Outcome = "rejected"
	OutcomeTransport Outcome = "transport_error"
	OutcomeSkipped   Outcome = "skipped_duplicate"
)

// Alert is a request to notify about a trading bias change.
type Alert struct {
	Symbol  string `json:"symbol"`
	Bias    string `json:"bias"`
	Score   int    `json:"score"`
	Details string `json:"details,omitempty"`
}

// Attempt records one delivery attempt — sent, failed or skipped.
type Attempt struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Priority   int       `json:"priority"`
	Sound      string    `json:"sound,omitempty"`
	Outcome    Outcome   `json:"outcome"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

// Delivered reports whether the attempt actually reached the remote API.
func (a Attempt) Delivered() bool { return a.Outcome == OutcomeSent }
