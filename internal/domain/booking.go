package domain

import "strings"

// BookingRecord represents one normalized booking row from the external
// spreadsheet-backed source.
//
// A record that survived normalization always has a Date matching
// YYYY-MM-DD and a lowercase Room (empty string means "no room").
// Time, Status and Duration are free text and may be empty; an empty Time
// implies a full-day booking, an empty Status implies a visible booking.
type BookingRecord struct {
	Room     string
	Date     string
	Time     string
	Status   string
	Duration string
}

// IsOnDate returns true if the record falls on the given YYYY-MM-DD key.
func (r *BookingRecord) IsOnDate(dateKey string) bool {
	return r.Date == dateKey
}

// IsForRoom returns true if the record belongs to the given canonical room
// key. Matching is exact (not substring), case-insensitive.
func (r *BookingRecord) IsForRoom(roomKey string) bool {
	return strings.ToLower(r.Room) == strings.ToLower(roomKey)
}
