package domain

// PriceTier describes one pricing tier of a room (half-day ≈ 4 hours,
// full-day ≈ 8 hours). Price is display text, currency included.
type PriceTier struct {
	Hours int
	Price string
}

// RoomConfig is the static display metadata of a bookable space, keyed by
// its canonical lowercase room key (e.g. "think tank"). Loaded once from
// configuration and never mutated at runtime; it does not affect grid
// computation.
type RoomConfig struct {
	Key         string
	DisplayName string
	Description string
	Capacity    string
	Color       string
	HalfDay     PriceTier
	FullDay     PriceTier
}

// DefaultRoomConfig is served for unknown room keys instead of an error.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		DisplayName: "WORKSPACE",
		Description: "Professional workspace for your needs",
		Color:       "#6b7280",
	}
}
