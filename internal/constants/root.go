package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "tally"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tally/tally.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultTimezone is used until the user configures one
	DefaultTimezone = "Local"

	// StreakScanLimit bounds backward streak walks so a bad data set can
	// never spin the scan forever
	StreakScanLimit = 365

	// ActivityGridWidth is the fixed number of day slots in an activity row;
	// slots past the real month length stay false
	ActivityGridWidth = 31

	// Session States
	StateHabits SessionState = iota
	StateGrid
	StateTrophies
	StateAddHabit
	StateConfirmDelete
)
