package domain

import "strings"

// DayStatus represents the availability state of one calendar day
type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayBooked    DayStatus = "booked"
	DayWarning   DayStatus = "warning"
)

// StatusRules decides which raw status strings are shown on the calendar,
// which ones mark a day as "in progress", and how statuses are labelled for
// display. Constructed once from configuration and never mutated.
type StatusRules struct {
	hidden        []string
	warning       []string
	labels        map[string]string
	fallbackLabel string
}

// NewStatusRules builds an immutable rule set. Keywords and label keys are
// matched case-insensitively; nil/empty arguments fall back to the default
// vocabulary.
func NewStatusRules(hidden, warning []string, labels map[string]string, fallbackLabel string) StatusRules {
	if len(hidden) == 0 {
		hidden = DefaultHiddenStatuses
	}
	if len(warning) == 0 {
		warning = DefaultWarningStatuses
	}
	if len(labels) == 0 {
		labels = DefaultStatusLabels
	}
	if fallbackLabel == "" {
		fallbackLabel = DefaultStatusLabel
	}

	r := StatusRules{
		hidden:        make([]string, 0, len(hidden)),
		warning:       make([]string, 0, len(warning)),
		labels:        make(map[string]string, len(labels)),
		fallbackLabel: fallbackLabel,
	}
	for _, kw := range hidden {
		r.hidden = append(r.hidden, strings.ToLower(kw))
	}
	for _, kw := range warning {
		r.warning = append(r.warning, strings.ToLower(kw))
	}
	for raw, label := range labels {
		r.labels[strings.ToLower(raw)] = label
	}
	return r
}

// DefaultStatusRules returns the rule set with the built-in vocabulary.
func DefaultStatusRules() StatusRules {
	return NewStatusRules(nil, nil, nil, "")
}

// DisplayEligible reports whether a record with this status may appear on
// the calendar. Empty and whitespace-only statuses are eligible; a status
// containing any hidden keyword is not.
func (r StatusRules) DisplayEligible(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "" {
		return true
	}
	for _, kw := range r.hidden {
		if strings.Contains(s, kw) {
			return false
		}
	}
	return true
}

// IsWarning reports whether the status marks an in-progress booking.
// Independent of DisplayEligible: an eligible booking may still be a warning.
func (r StatusRules) IsWarning(status string) bool {
	s := strings.ToLower(status)
	for _, kw := range r.warning {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// DisplayLabel maps a raw status to its user-facing label. Known statuses
// use the configured label map, empty statuses get the fallback label, and
// unknown statuses pass through unchanged.
func (r StatusRules) DisplayLabel(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if label, ok := r.labels[s]; ok {
		return label
	}
	if s == "" {
		return r.fallbackLabel
	}
	return status
}
