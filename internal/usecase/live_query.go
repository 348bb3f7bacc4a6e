package usecase

import (
	"context"
	"log"
	"time"
)

const defaultLiveQueryInterval = 5 * time.Second

// liveQuery polls fetch every interval and pushes the result on the returned
// channel on the first successful fetch and whenever it differs from the last
// value sent. Fetch errors are logged and retried on the next tick. The
// channel is closed when ctx is done.
func liveQuery[T any](ctx context.Context, name string, interval time.Duration, fetch func(context.Context) (T, error), same func(a, b T) bool) <-chan T {
	if interval <= 0 {
		interval = defaultLiveQueryInterval
	}
	out := make(chan T, 1)

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last T
		sent := false
		for {
			v, err := fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("[live][%s] fetch failed err=%v", name, err)
			} else if !sent || !same(last, v) {
				select {
				case out <- v:
					last, sent = v, true
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
