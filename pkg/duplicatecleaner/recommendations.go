package duplicatecleaner

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
)

const (
	RecommendNetwork = "Troubleshoot network issues: check the connection to the cloud backend and retry"
	RecommendAuth    = "Sign in again: the session looks expired or lacks permission"
	RecommendRetry   = "Some duplicates could not be removed, run the cleanup again to retry them"
)

var (
	networkPatterns = []string{"network", "fetch", "cors", "timeout", "deadline", "connection", "offline", "no such host"}
	authPatterns    = []string{"unauth", "jwt", "token", "permission", "forbidden", "401", "403"}
)

// Recommendations turns failures into advice for the user.
func Recommendations(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}

	var out []string

	for _, err := range errs {
		msg := strings.ToLower(err.Error())

		switch {
		case errors.Is(err, common.ErrOffline) || containsAny(msg, networkPatterns):
			out = append(out, RecommendNetwork)
		case errors.Is(err, common.ErrUnauthenticated) || containsAny(msg, authPatterns):
			out = append(out, RecommendAuth)
		}
	}

	out = append(out, RecommendRetry)

	return lo.Uniq(out)
}

func containsAny(msg string, patterns []string) bool {
	return lo.SomeBy(patterns, func(p string) bool {
		return strings.Contains(msg, p)
	})
}
