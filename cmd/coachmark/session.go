// ABOUTME: Fullscreen session: alternate screen, tui event loop, stdin reader, metrics server
// ABOUTME: Loops run under an errgroup and stop together on quit, signal, or input EOF

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	httpserver "github.com/mauromedda/coachmark-go/internal/http"
	"github.com/mauromedda/coachmark-go/internal/log"
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/input"
	"github.com/mauromedda/coachmark-go/pkg/tui/key"
	"github.com/mauromedda/coachmark-go/pkg/tui/terminal"
)

// runFullscreen runs the demo screen until the user quits or ctx ends.
// ready runs once on the event goroutine before the first frame.
func runFullscreen(ctx context.Context, a *app, ready func(*demoScreen)) error {
	opts, err := a.markOptions()
	if err != nil {
		return err
	}
	keys, err := a.keyBindings()
	if err != nil {
		return err
	}

	term := terminal.NewProcessTerminal()
	defer func() { _ = term.Close() }()
	w, h, err := term.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if err := terminal.EnterFullscreen(term); err != nil {
		return err
	}
	defer func() { _ = terminal.LeaveFullscreen(term) }()
	defer terminal.RestoreOnPanic(term)

	restoreLogs := a.quietLogs()
	defer restoreLogs()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := tui.New(term, w, h)
	scr := newDemoScreen(ui, opts, keys, cancel)
	term.OnResize(ui.SetSize)
	ui.OnKey(scr.handleKey)
	ui.Start()
	ui.Post(func() {
		// Lay anchors out before anything is shown against them.
		ui.RenderOnce()
		if ready != nil {
			ready(scr)
		}
		scr.refreshFooter()
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer terminal.RecoverGoroutine(term)
		in := input.NewStdinBuffer(term.Input(), func(k key.Key) {
			ui.Post(func() { ui.HandleKey(k) })
		})
		in.Start(gctx)
		// Input ended: EOF, a read error, or cancellation.
		cancel()
		return nil
	})
	if a.prom != nil {
		g.Go(func() error {
			return httpserver.ServeMetrics(gctx, a.metricsAddr, a.prom.Handler())
		})
	}

	err = g.Wait()

	done := make(chan struct{})
	ui.Post(func() {
		scr.close()
		close(done)
	})
	select {
	case <-done:
	case <-time.After(httpserver.ShutdownTimeout):
		log.Warn("session: event loop did not stop in %v", httpserver.ShutdownTimeout)
		ui.Stop()
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
