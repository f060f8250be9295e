package contextutil_test

import (
	"context"
	"testing"

	"go-roster/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSessionID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", contextutil.GetSessionID(ctx))

	ctx = contextutil.WithSessionID(ctx, "abc")
	assert.Equal(t, "abc", contextutil.GetSessionID(ctx))
}

func TestGetLogger(t *testing.T) {
	t.Run("from context", func(t *testing.T) {
		l := zap.NewExample()
		ctx := contextutil.WithLogger(context.Background(), l)
		assert.Same(t, l, contextutil.GetLogger(ctx, nil))
	})

	t.Run("fallback", func(t *testing.T) {
		def := zap.NewExample()
		assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
