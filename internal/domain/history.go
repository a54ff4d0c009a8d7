package domain

// HistoryEntry is one persisted, successfully confirmed query.
type HistoryEntry struct {
	ID    int64  `json:"id"`
	Query string `json:"query"`
}

// RankedQuery is a distinct historical query with the number of rows sharing it.
type RankedQuery struct {
	Frequency int64
	Query     string
}
