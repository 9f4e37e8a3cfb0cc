package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// NotifyContext identifies which operation a notification refers to
type NotifyContext string

// Section identifies a group of controls on the settings screen
type Section int

const (
	AppName          = "watchtune"
	DefaultServerURL = "http://localhost:8000"
	Version          = "v0.3.1"

	// API path fixed by the monitoring backend
	SettingsPath = "/api/settings"

	// RequestTimeout bounds a single fetch or save round trip
	RequestTimeout = 10 * time.Second

	// Notify constants
	NotifierLockfileName   = "watchtune-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "dev.watchtune.tray"

	// Notification contexts
	ContextFetch NotifyContext = "fetch"
	ContextSave  NotifyContext = "save"

	// Session States
	StateLoading SessionState = iota
	StateReady
	StateSaving
	StateLoadError
	StateEditField
	StateEditThresholds
)

// Settings screen sections, in tab order
const (
	SectionThresholds Section = iota
	SectionExtensions
	SectionLandmarks
	SectionObjects
	SectionCount
)
