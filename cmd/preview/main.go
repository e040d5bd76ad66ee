package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"law_landing_go/config"
	"law_landing_go/content"
	"law_landing_go/services"
	"law_landing_go/services/motion"
	"law_landing_go/services/preview"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	contentPath string
	target      float64
	fps         int
	duration    time.Duration
	bounce      float64
	plot        bool
	asJSON      bool
	live        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "preview",
		Short: "terminal preview of the landing page",
		RunE:  runPreview,
	}
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "site copy yaml (default: embedded)")

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "print the counter values of one run, frame by frame",
		RunE:  runFrames,
	}
	framesCmd.Flags().Float64Var(&target, "target", 500, "counter target")
	framesCmd.Flags().IntVar(&fps, "fps", 60, "frames per second")
	framesCmd.Flags().DurationVar(&duration, "duration", motion.DefaultSettleDuration, "settle duration")
	framesCmd.Flags().Float64Var(&bounce, "bounce", 0, "spring bounce, 0 is critically damped")
	framesCmd.Flags().BoolVar(&plot, "plot", false, "draw the track as a graph")
	framesCmd.Flags().BoolVar(&asJSON, "json", false, "print the track as JSON")
	framesCmd.Flags().BoolVar(&live, "live", false, "play the counter in real time instead of sampling it")

	rootCmd.AddCommand(framesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	if err := content.Load(contentPath); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	model := preview.New(content.Current(), services.LandingOptionsFromConfig(cfg), nil)
	defer model.Dispose()

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func runFrames(cmd *cobra.Command, args []string) error {
	if fps < 1 || fps > config.MaxCounterFPS {
		return config.ErrInvalidFPS
	}
	if duration <= 0 {
		return config.ErrInvalidDuration
	}

	spring := motion.NewSpring(duration, bounce)
	out := cmd.OutOrStdout()

	if live {
		n, err := preview.Play(cmd.Context(), out, target, fps, spring)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d frames\n", n)
		return nil
	}

	frames := motion.Keyframes(target, fps, spring)
	switch {
	case asJSON:
		enc := json.NewEncoder(out)
		return enc.Encode(map[string]interface{}{
			"target":      target,
			"fps":         fps,
			"duration_ms": duration.Milliseconds(),
			"frames":      frames,
		})
	case plot:
		if len(frames) == 0 {
			fmt.Fprintln(out, "no frames: counter is already at its target")
			return nil
		}
		data := make([]float64, len(frames))
		for i, v := range frames {
			data[i] = float64(v)
		}
		fmt.Fprintln(out, asciigraph.Plot(data,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("counter 0 -> %g over %s at %d fps (%d frames)", target, duration, fps, len(frames))),
		))
		return nil
	}

	var b strings.Builder
	for i, v := range frames {
		fmt.Fprintf(&b, "%4d  %8s  %d\n", i+1, motion.FrameOffset(fps, i+1), v)
	}
	fmt.Fprint(out, b.String())
	return nil
}
