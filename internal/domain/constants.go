package domain

// Plugin identity reported to the launcher host.
const (
	PluginName = "HA Assist"
	PluginIcon = "go-home"
)

// Configuration defaults
const (
	// DefaultPrefix is the activation prefix used when none is configured
	DefaultPrefix = ":ha"
	// DefaultLanguage is the conversation language used when none is configured
	DefaultLanguage = "en"
)

// File and path constants
const (
	// ConfigFileName is the config file looked up inside the config directory
	ConfigFileName = "ha-assist.yaml"
	// HistoryFileName is the SQLite database created inside the cache directory
	HistoryFileName = "ha-assist.sqlite3"
	// ConversationPath is the Home Assistant conversation endpoint
	ConversationPath = "/api/conversation/process"
	// APIStatusPath answers authenticated GETs when the API is up
	APIStatusPath = "/api/"
)

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Status icons attached to decorated candidates.
const (
	IconSuccess = "emblem-success"
	IconError   = "emblem-error"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)
