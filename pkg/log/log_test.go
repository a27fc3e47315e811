package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), " req-123 ")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))
}

func TestGetCorrelationID_SemValor(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("store_id"))
	assert.True(t, keepInDevelopment("user_email"))
	assert.True(t, keepInDevelopment("session_id"))
	assert.False(t, keepInDevelopment("remote_addr"))
}
