package models

import (
	"encoding/json"
	"time"
)

// Record is the persisted unit of the date-keyed store: one opaque content
// document per (user, date key). The date key is an ISO YYYY-MM-DD anchor whose
// meaning depends on the granularity that wrote it (the day itself for daily
// records, the Monday of the week, the first of the month, January 1st).
type Record struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;uniqueIndex:uidx_user_date_key" json:"userId"`
	DateKey   string          `gorm:"not null;uniqueIndex:uidx_user_date_key" json:"date"`
	Content   json.RawMessage `gorm:"serializer:json" json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// HasContent reports whether the record carries a non-empty content document.
// An active day on the dashboard is a day whose record passes this check.
func (record Record) HasContent() bool {
	trimmed := string(record.Content)
	switch trimmed {
	case "", "null", "{}", "[]":
		return false
	}
	return true
}
