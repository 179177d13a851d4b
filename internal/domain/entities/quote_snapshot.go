package entities

import "time"

// QuoteSnapshot is the persisted state of the quote store.
//
// It is written as a single JSON blob under a named key and restored verbatim
// on start-up. Both collections keep insertion order.
type QuoteSnapshot struct {
	Requests  []QuoteRequest  `json:"requests"`
	Responses []QuoteResponse `json:"responses"`
	SavedAt   time.Time       `json:"saved_at"`
}

func (s QuoteSnapshot) IsEmpty() bool {
	return len(s.Requests) == 0 && len(s.Responses) == 0
}
