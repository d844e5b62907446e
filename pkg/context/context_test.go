package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
	assert.Equal(t, "unknown", GetRequestID(WithRequestID(context.Background(), "")))
}

// A plain string key set by another package must not be mistaken for the
// request id.
func TestGetRequestID_IgnoresForeignStringKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), "request_id", "spoofed") //nolint:staticcheck
	assert.Equal(t, "unknown", GetRequestID(ctx))
}
