package models

import "time"

// OrderPlacedEvent is published after a successful checkout.
type OrderPlacedEvent struct {
	Event     string    `json:"event"`
	Email     string    `json:"email"`
	OrderIDs  []string  `json:"order_ids"`
	Timestamp time.Time `json:"timestamp"`
}
