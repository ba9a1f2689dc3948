// File: models/slots.go
package models

// Slot is one half-open "HH:MM" time window, [Start, End).
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BatchResult reports the per-slot outcome of a sequential bulk mutation.
// The operation is best-effort: Failed being non-empty means the store now
// holds a mix of old and new windows.
type BatchResult struct {
	Succeeded []Slot `json:"succeeded"`
	Failed    []Slot `json:"failed"`
}

// Ok reports whether every write in the batch landed.
func (b BatchResult) Ok() bool {
	return len(b.Failed) == 0
}
