package domain

import (
	"encoding/json"
	"time"
)

// ProcessID identifies which OS process claimed a withdraw request.
// Two independent processes may run this pipeline: the foreground
// application and the background notification handler.
type ProcessID string

const (
	ProcessApp      ProcessID = "app"
	ProcessNotifier ProcessID = "notifier"
)

// HandlerSlotKey is the shared versioned key-value slot holding the
// handler list. It is the only synchronization point between processes.
const HandlerSlotKey = "withdraw_request_handlers"

// HandlerRetention is how long claimed-request entries are kept before
// being pruned on the next write.
const HandlerRetention = 7 * 24 * time.Hour

// HandlerEntry records that a process claimed a specific request hash.
type HandlerEntry struct {
	Hash    string    `json:"hash"`
	Process ProcessID `json:"process"`
	Date    time.Time `json:"date"`
}

// DecodeHandlerEntries parses the handler-list blob. A nil or empty
// blob decodes to an empty list.
func DecodeHandlerEntries(data []byte) ([]HandlerEntry, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var entries []HandlerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EncodeHandlerEntries serializes the handler list.
func EncodeHandlerEntries(entries []HandlerEntry) ([]byte, error) {
	return json.Marshal(entries)
}

// ContainsHash reports whether any entry claims the given hash.
func ContainsHash(entries []HandlerEntry, hash string) bool {
	for _, e := range entries {
		if e.Hash == hash {
			return true
		}
	}
	return false
}

// PruneHandlerEntries drops entries older than the retention window.
func PruneHandlerEntries(entries []HandlerEntry, now time.Time) []HandlerEntry {
	cutoff := now.Add(-HandlerRetention)
	kept := entries[:0]
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	return kept
}
