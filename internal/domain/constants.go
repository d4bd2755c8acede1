package domain

// Slot grid
const (
	SlotsStartMinutes = 9 * 60  // 09:00
	SlotsEndMinutes   = 18 * 60 // 18:00, последний слот
	SlotStepMinutes   = 30
)

// Default booking rules
const (
	DefaultBookingWindowMonths = 2
	MaxNotesLength             = 500
	MinPasswordLength          = 6
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
