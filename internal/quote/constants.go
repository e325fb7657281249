package quote

// Batch limits
const (
	// MaxBatchSize bounds the number of pets in one quote, plan or ingest call
	MaxBatchSize = 1000
)

// Rejection reasons reported by IngestSnapshots
const (
	ReasonStale = "stale snapshot: an equal or newer read is cached"
)

// Log messages
const (
	LogMsgSnapshotsIngested = "Snapshots ingested"
	LogMsgSnapshotRejected  = "Snapshot rejected"
	LogMsgQuoteComputed     = "Reward quote computed"
	LogMsgBatchQuoted       = "Batch reward quote computed"
	LogMsgBatchSaturated    = "Batch totals saturated"
	LogMsgFeedPlanned       = "Batch feed planned"
	LogMsgSnapshotMissing   = "Snapshot not cached"
)
