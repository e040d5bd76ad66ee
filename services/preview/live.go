package preview

import (
	"context"
	"fmt"
	"io"
	"time"

	"law_landing_go/config"
	"law_landing_go/services/motion"
)

// Play runs one counter against the system clock, ticking a frame loop at
// fps, and writes each displayed value to w as it changes. It returns once
// the counter settles or ctx is done, along with the number of frames ticked.
func Play(ctx context.Context, w io.Writer, target float64, fps int, spring motion.Spring) (uint64, error) {
	interval := motion.FrameInterval(fps)
	if interval <= 0 {
		return 0, fmt.Errorf("%w (got %d)", config.ErrInvalidFPS, fps)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := motion.NewFrameLoop(nil)
	c := motion.NewCounter(loop, target, motion.WithSpring(spring))
	defer c.Dispose()

	var writeErr error
	c.OnChange(func(v int) {
		start, _ := c.StartTime()
		_, err := fmt.Fprintf(w, "%8s  %d\n", loop.Now().Sub(start).Round(time.Millisecond), v)
		if err != nil && writeErr == nil {
			writeErr = err
			cancel()
		}
	})

	c.Trigger()
	if c.State() != motion.CounterAnimating {
		return 0, nil
	}

	// Subscribed after the counter, so it sees the counter's state for the
	// same frame.
	loop.Subscribe(func(time.Time) {
		if c.State() != motion.CounterAnimating {
			cancel()
		}
	})

	err := loop.Run(ctx, interval)
	switch {
	case writeErr != nil:
		return loop.Frames(), writeErr
	case c.State() == motion.CounterSettled:
		return loop.Frames(), nil
	}
	return loop.Frames(), err
}
