package diag

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ziadkadry99/cheatcompare/internal/loader"
	"github.com/ziadkadry99/cheatcompare/internal/selection"
)

// Entry is one failed document retrieval.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	SessionID  string    `json:"session_id,omitempty"`
	Slot       string    `json:"slot"`
	Address    string    `json:"address"`
	StatusCode int       `json:"status_code,omitempty"`
	Error      string    `json:"error"`
}

// Recorder returns a failure callback that journals failures for one
// session. Journal errors are logged and otherwise ignored.
func (s *Store) Recorder(sessionID string) func(slot selection.Slot, address string, err error) {
	return func(slot selection.Slot, address string, err error) {
		entry := Entry{
			SessionID: sessionID,
			Slot:      string(slot),
			Address:   address,
			Error:     err.Error(),
		}
		var statusErr *loader.StatusError
		if errors.As(err, &statusErr) {
			entry.StatusCode = statusErr.StatusCode
		}
		if recErr := s.Record(context.Background(), entry); recErr != nil {
			log.Printf("diag: recording failure for %s: %v", address, recErr)
		}
	}
}
