package models

import "time"

// Meeting is a scheduled briefing or counselling session.
type Meeting struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Date      time.Time `db:"meeting_date" json:"date"`
	Time      string    `db:"start_time" json:"time"`
	Location  string    `db:"location" json:"location"`
	Attendees int       `db:"attendees" json:"attendees"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
