package constants

// BatchStatus is the canonical status for rows in batch.
type BatchStatus string

// Stable values (store these exact strings in DB).
const (
	BatchStatusQueued  BatchStatus = "QUEUED"  // accepted, not started
	BatchStatusRunning BatchStatus = "RUNNING" // items being generated
	BatchStatusDone    BatchStatus = "DONE"    // all items attempted
	BatchStatusFailed  BatchStatus = "FAILED"  // aborted before items could be attempted
)

// BatchStatuses holds the allowed batch statuses.
var BatchStatuses = []string{
	string(BatchStatusQueued),
	string(BatchStatusRunning),
	string(BatchStatusDone),
	string(BatchStatusFailed),
}

// ItemStatus is the per-item outcome within a batch.
type ItemStatus string

const (
	ItemStatusOK     ItemStatus = "OK"
	ItemStatusFailed ItemStatus = "FAILED"
)

// ItemStatuses holds the allowed item statuses.
var ItemStatuses = []string{string(ItemStatusOK), string(ItemStatusFailed)}

// FailureReason is the machine-readable category of a generation failure.
type FailureReason string

const (
	ReasonRateLimited       FailureReason = "RATE_LIMITED"
	ReasonAuthError         FailureReason = "AUTH_ERROR"
	ReasonInvalidPrompt     FailureReason = "INVALID_PROMPT"
	ReasonTransientNetwork  FailureReason = "TRANSIENT_NETWORK_ERROR"
	ReasonMalformedResponse FailureReason = "MALFORMED_RESPONSE"
)

// FailureReasons holds the allowed failure reason codes.
var FailureReasons = []string{
	string(ReasonRateLimited),
	string(ReasonAuthError),
	string(ReasonInvalidPrompt),
	string(ReasonTransientNetwork),
	string(ReasonMalformedResponse),
}
