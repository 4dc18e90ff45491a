package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsQuotaExceeded(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "quota error",
			err:  &QuotaError{Op: "upload f1.jpg", Err: errors.New("limit reached")},
			want: true,
		},
		{
			name: "wrapped quota error",
			err:  fmt.Errorf("process folder: %w", &QuotaError{Op: "commit batch"}),
			want: true,
		},
		{
			name: "google api 429",
			err:  &googleapi.Error{Code: 429, Message: "Resource has been exhausted"},
			want: true,
		},
		{
			name: "wrapped google api 429",
			err:  fmt.Errorf("upload: %w", &googleapi.Error{Code: 429}),
			want: true,
		},
		{
			name: "google api 403 with quota reason",
			err: &googleapi.Error{
				Code:   403,
				Errors: []googleapi.ErrorItem{{Reason: "userRateLimitExceeded"}},
			},
			want: true,
		},
		{
			name: "google api 403 daily limit",
			err: &googleapi.Error{
				Code:   403,
				Errors: []googleapi.ErrorItem{{Reason: "dailyLimitExceeded"}},
			},
			want: true,
		},
		{
			name: "google api 403 without quota reason",
			err: &googleapi.Error{
				Code:   403,
				Errors: []googleapi.ErrorItem{{Reason: "insufficientPermissions"}},
			},
			want: false,
		},
		{
			name: "google api 500",
			err:  &googleapi.Error{Code: 500},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsQuotaExceeded(tt.err))
		})
	}
}

func TestQuotaError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("limit reached")
	err := &QuotaError{Op: "create album", Err: cause}

	assert.Equal(t, "create album: quota exceeded: limit reached", err.Error())
	assert.ErrorIs(t, err, cause)
}
