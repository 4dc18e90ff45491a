package commands

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// QuotaError marks a remote rejection caused by rate or quota limits. It is
// fatal to the current folder and the current run; all durably recorded
// progress remains valid, so a later run resumes where this one stopped.
type QuotaError struct {
	Op  string
	Err error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%s: quota exceeded: %v", e.Op, e.Err)
}

func (e *QuotaError) Unwrap() error {
	return e.Err
}

// IsQuotaExceeded reports e as quota-caused; see quotaFlagged.
func (e *QuotaError) IsQuotaExceeded() bool {
	return true
}

// quotaFlagged is implemented by errors that declare themselves
// quota-caused. Classification is by explicit flag, never by matching
// message text.
type quotaFlagged interface {
	IsQuotaExceeded() bool
}

// IsQuotaExceeded reports whether err anywhere in its chain is a quota or
// rate-limit rejection: either an error carrying an explicit quota flag, or
// a Google API error with a 429 status or a quota-class 403 reason.
func IsQuotaExceeded(err error) bool {
	var flagged quotaFlagged
	if errors.As(err, &flagged) && flagged.IsQuotaExceeded() {
		return true
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	if apiErr.Code == http.StatusForbidden {
		for _, item := range apiErr.Errors {
			switch item.Reason {
			case "rateLimitExceeded", "userRateLimitExceeded", "quotaExceeded", "dailyLimitExceeded":
				return true
			}
		}
	}
	return false
}
