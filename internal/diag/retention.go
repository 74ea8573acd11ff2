package diag

import (
	"context"
	"log"
	"time"
)

// Prune removes entries older than maxAge.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	return s.DeleteBefore(ctx, time.Now().Add(-maxAge))
}

// RunRetention prunes entries older than maxAge now and then every interval
// until ctx is done. A maxAge <= 0 keeps everything.
func (s *Store) RunRetention(ctx context.Context, maxAge, interval time.Duration) {
	if maxAge <= 0 {
		return
	}

	prune := func() {
		n, err := s.Prune(ctx, maxAge)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("diag: pruning journal: %v", err)
			}
			return
		}
		if n > 0 {
			log.Printf("diag: pruned %d journal entries older than %s", n, maxAge)
		}
	}

	prune()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			prune()
		case <-ctx.Done():
			return
		}
	}
}
