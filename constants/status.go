package constants

// ScanStatus is the canonical status for one document scored through the
// batch queue.
type ScanStatus string

// Stable values (logged and stored as these exact strings).
const (
	ScanStatusQueued  ScanStatus = "QUEUED"  // waiting for a worker
	ScanStatusRunning ScanStatus = "RUNNING" // pipeline in progress
	ScanStatusScored  ScanStatus = "SCORED"  // report produced
	ScanStatusFailed  ScanStatus = "FAILED"  // terminal failure (empty input, no items)
)
