package commands

// Error messages
const (
	ErrEngineUnavailable        = "suggestion engine unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrUsageStoreUnavailable    = "usage tracking disabled (set usage.enabled in config)"
	ErrLineRequired             = "--line must be >= 1"
	ErrSuggestionIDRequired     = "--id is required"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoUsageRecorded          = "No accepted suggestions recorded yet."
	MsgUsageCleared             = "Usage history cleared."
	MsgConfigValueUpdated       = "Updated %s\n"
	MsgConfigurationReset       = "Configuration reset at %s\n"
	MsgLanguageEnabled          = "Enabled %s (takes effect on the next run)\n"
	MsgLanguageDisabled         = "Disabled %s (takes effect on the next run)\n"
)

// Environment
const (
	EnvEditor     = "EDITOR"
	DefaultEditor = "vi"
)

// Flag defaults
const (
	// DefaultColumn places the cursor at the end of the line.
	DefaultColumn = -1
)
