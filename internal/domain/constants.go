package domain

// Default configuration values
const (
	DefaultSlotStepMinutes         = 10
	DefaultBufferMinutes           = 0
	DefaultAdvanceBookingDays      = 30
	DefaultMinBookingNoticeMinutes = 0
)

// Business validation constants
const (
	MinSlotStepMinutes        = 5
	MaxSlotStepMinutes        = 240
	MinBufferMinutes          = 0
	MaxBufferMinutes          = 120
	MinAdvanceBookingDays     = 0
	MaxAdvanceBookingDays     = 365 // 1 year
	MinBookingNoticeMinutes   = 0
	MaxBookingNoticeMinutes   = 10080 // 1 week
	MaxHaircutDurationMinutes = 480
	MaxNameLength             = 100
	MaxCustomerNameLength     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking lifecycle events
const (
	EventBookingCreated   = "created"
	EventBookingFinished  = "finished"
	EventBookingCancelled = "cancelled"
	EventBookingConflict  = "conflict"
)
