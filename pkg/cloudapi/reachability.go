package cloudapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// Reachability reports whether the backend answered recently. Probes are cached for ttl.
type Reachability struct {
	probe   func(ctx context.Context) error
	ttl     time.Duration
	timeout time.Duration
	clock   func() time.Time

	mu        sync.Mutex
	online    bool
	checkedAt time.Time
}

// NewReachability probes the REST root with a HEAD request. Any answer below 500 counts
// as online.
func NewReachability(client *Client, ttl time.Duration) *Reachability {
	return NewProbeReachability(func(ctx context.Context) error {
		resp, err := client.request(ctx, "").Head(client.baseURL + "/rest/v1/")
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return errors.Newf("backend answered with status %v", resp.StatusCode)
		}

		return nil
	}, ttl)
}

// NewProbeReachability caches an arbitrary backend probe, for example a database ping.
func NewProbeReachability(probe func(ctx context.Context) error, ttl time.Duration) *Reachability {
	return &Reachability{
		probe:   probe,
		ttl:     ttl,
		timeout: 5 * time.Second,
		clock:   time.Now,
	}
}

func (r *Reachability) IsOnline() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	if !r.checkedAt.IsZero() && now.Sub(r.checkedAt) < r.ttl {
		return r.online
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	r.online = r.probe(ctx) == nil
	r.checkedAt = now

	return r.online
}

// MarkOffline forces the next IsOnline call to probe again.
func (r *Reachability) MarkOffline() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.online = false
	r.checkedAt = time.Time{}
}
