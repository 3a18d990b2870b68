package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotConnected(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	assert.False(t, IsConnected())
	assert.Error(t, Ping(ctx))

	_, err := Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, Close())
}
