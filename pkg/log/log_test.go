package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsDevelopmentField(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"correlation_id", true},
		{"plan_id", true},
		{"evaluation_id", true},
		{"status_code", true},
		{"field", true},
		{"error_code", true},
		{"user_agent", false},
		{"referer", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, isDevelopmentField(tt.key))
		})
	}
}
