package domain

import "regexp"

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SentinelInvalidDate is emitted by the spreadsheet export for rows whose
// date cells were never filled in. Records carrying it are dropped during
// normalization.
const SentinelInvalidDate = "undefined-undefined-Due Date"

// DateKeyPattern validates the canonical YYYY-MM-DD shape of source records.
var DateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Default status vocabulary, applied when the configuration omits it
var (
	// DefaultHiddenStatuses are statuses that must never appear on the calendar
	DefaultHiddenStatuses = []string{"done", "cancel", "invoice", "process of invoice"}

	// DefaultWarningStatuses mark a booking as still in progress
	DefaultWarningStatuses = []string{"progress"}

	// DefaultStatusLabels maps raw source statuses to user-facing labels
	DefaultStatusLabels = map[string]string{
		"deposit":         "Booking confirmed",
		"booking confirm": "Booking confirmed",
	}
)

// DefaultStatusLabel is shown for bookings whose status is empty.
const DefaultStatusLabel = "Confirmed"
