package commands

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Error messages
const (
	ErrHistoryStoreUnavailable = "history store unavailable"
	ErrConfirmationFailed      = "no reply for %q (run with --verbose for details)"
)

// Success messages
const (
	MsgNoCandidates      = "No candidates."
	MsgNoHistoryRecorded = "No history recorded yet."
	MsgHistoryCleared    = "History cleared."
)
