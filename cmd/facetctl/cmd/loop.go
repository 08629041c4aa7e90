/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/facet"
	"dirpx.dev/facet/frame"
	"dirpx.dev/facet/input"
	"dirpx.dev/facet/metrics"
	"dirpx.dev/facet/window"
	"dirpx.dev/facet/window/headless"
)

const vkEscape = 0x1B

// LoopOptions holds the loop flags.
type LoopOptions struct {
	FPS         uint
	Frames      int
	Duration    time.Duration
	MetricsAddr string
}

// LoopStats summarizes one run.
type LoopStats struct {
	Frames    int
	Loops     int
	LastFrame time.Duration
	Move      window.Point
}

// NewLoopCommand runs the frame loop on a headless window.
func NewLoopCommand(_ *RootOptions) *cobra.Command {
	opts := &LoopOptions{}

	cmd := &cobra.Command{
		Use:   "loop",
		Short: "Run the frame loop against the headless platform",
		Long: `Create a headless window and run the poll/ready loop until --frames
frames were rendered or --duration elapsed, whichever comes first. Each frame
feeds a synthetic raw mouse record through the window procedure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Frames <= 0 && opts.Duration <= 0 {
				return errors.New("one of --frames or --duration must be positive")
			}
			stats, err := runLoop(cmd.Context(), opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "frames: %d\n", stats.Frames)
			fmt.Fprintf(out, "loops: %d\n", stats.Loops)
			fmt.Fprintf(out, "last frame: %s\n", stats.LastFrame)
			fmt.Fprintf(out, "mouse move: %d,%d\n", stats.Move.X, stats.Move.Y)
			return nil
		},
	}

	cmd.Flags().UintVar(&opts.FPS, "fps", 60, "frame rate cap (0 renders every loop)")
	cmd.Flags().IntVar(&opts.Frames, "frames", 0, "stop after this many frames (0 = no limit)")
	cmd.Flags().DurationVar(&opts.Duration, "duration", time.Second, "stop after this long (0 = no limit)")
	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")

	return cmd
}

func runLoop(ctx context.Context, opts *LoopOptions) (LoopStats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		c := metrics.New(reg)
		prevObs := facet.SetObserver(c)
		prevFrameObs := frame.SetObserver(c)
		defer func() {
			facet.SetObserver(prevObs)
			frame.SetObserver(prevFrameObs)
		}()
		if err := serveMetrics(ctx, g, opts.MetricsAddr, reg); err != nil {
			return LoopStats{}, err
		}
	}

	stats, err := drive(opts)
	cancel()
	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	return stats, err
}

func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, reg *prometheus.Registry) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	slog.Info("facetctl: serving metrics", "addr", ln.Addr().String())

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return nil
}

func drive(opts *LoopOptions) (LoopStats, error) {
	var stats LoopStats

	p := headless.New()
	prevPlatform := window.Init(p)
	defer window.Init(prevPlatform)
	prevSource := frame.SetSource(p)
	defer frame.SetSource(prevSource)

	kb := input.NewKeyboard()
	defer kb.Dec()
	mouse := input.NewMouse()
	defer mouse.Dec()

	proc := func(_ window.Handle, msg uint32, _, lParam uintptr) uintptr {
		switch msg {
		case window.MsgClose:
			frame.Destroy()
		case window.MsgInput:
			if err := mouse.ReadRawMove(lParam); err != nil {
				slog.Warn("facetctl: raw input", "error", err)
			}
		}
		return 0
	}

	cc := window.NewClassConfig("facetctl", proc)
	cls, err := window.NewClass(cc)
	cc.Dec()
	if err != nil {
		return stats, err
	}
	defer cls.Dec()

	wc, err := window.NewConfig(cls, 320, 240)
	if err != nil {
		return stats, err
	}
	wc.SetTitle("facetctl")
	w, err := window.NewWindow(wc, true)
	wc.Dec()
	if err != nil {
		return stats, err
	}
	defer w.Dec()
	if err := w.Show(); err != nil {
		return stats, err
	}
	if err := mouse.UseRawMouse(w); err != nil {
		return stats, err
	}
	defer mouse.DisableRawMouse()

	var deadline time.Time
	if opts.Duration > 0 {
		deadline = time.Now().Add(opts.Duration)
	}
	closing := false
	closeWindow := func() {
		if !closing {
			closing = true
			p.Post(frame.Event{Window: uintptr(w.Handle()), Msg: window.MsgClose})
		}
	}

	frame.Init()
	defer frame.Destroy()
	for frame.Poll() {
		stats.Loops++
		if err := kb.Update(); err != nil {
			return stats, err
		}
		if kb.Action(vkEscape) == input.Press {
			closeWindow()
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			closeWindow()
		}
		if !frame.Ready(opts.FPS) {
			time.Sleep(100 * time.Microsecond)
			continue
		}
		stats.Frames++
		mv := mouse.TakeMove()
		stats.Move.X += mv.X
		stats.Move.Y += mv.Y
		p.PostRawMouse(input.EncodeRawMouse(1, -1))
		if opts.Frames > 0 && stats.Frames >= opts.Frames {
			closeWindow()
		}
	}
	stats.LastFrame = frame.TimePerFrame()
	mv := mouse.TakeMove()
	stats.Move.X += mv.X
	stats.Move.Y += mv.Y
	slog.Debug("facetctl: loop finished", "frames", stats.Frames, "loops", stats.Loops)
	return stats, nil
}
