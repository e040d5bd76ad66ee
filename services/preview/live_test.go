package preview

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"law_landing_go/config"
	"law_landing_go/services/motion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaySettlesOnTarget(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out strings.Builder
	n, err := Play(ctx, &out, 50, 100, motion.NewSpring(100*time.Millisecond, 0))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, uint64(1))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "  50"), lines[len(lines)-1])
}

func TestPlayZeroTarget(t *testing.T) {
	var out strings.Builder
	n, err := Play(context.Background(), &out, 0, 60, motion.DefaultSpring())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
	assert.Empty(t, out.String())
}

func TestPlayStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	_, err := Play(ctx, &out, 500, 60, motion.DefaultSpring())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayInvalidFPS(t *testing.T) {
	_, err := Play(context.Background(), &strings.Builder{}, 500, 0, motion.DefaultSpring())
	assert.ErrorIs(t, err, config.ErrInvalidFPS)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPlayStopsOnWriteError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := Play(ctx, failingWriter{}, 500, 100, motion.DefaultSpring())
	assert.EqualError(t, err, "closed")
}
