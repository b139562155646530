package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/strokemap/internal/app"
	"github.com/dshills/strokemap/internal/event"
	"github.com/dshills/strokemap/internal/host/terminal"
	"github.com/dshills/strokemap/internal/provider"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		logFile string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw gestures in the terminal",
		Long: `Open a full-screen terminal surface. Hold the trigger button (right
button by default) and drag to draw a gesture; releasing it runs the
bound action.

Keys: Esc abandons the current drag, c clears messages, q quits.
Logs go to --log-file since the terminal is in use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runViewer(ctx, opts, logFile, watch)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "reload the configuration file when it changes")
	return cmd
}

func runViewer(ctx context.Context, opts *rootOptions, logFile string, watch bool) error {
	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	v := terminal.New(screen)
	a, err := app.New(app.Options{
		ConfigPath: opts.configPath,
		LogLevel:   opts.logLevel,
		LogOutput:  logOut,
		Viewer:     v,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := attachFeedback(a.Provider(), v); err != nil {
		return err
	}
	if watch && opts.configPath != "" {
		if err := a.Watch(v.Post); err != nil {
			a.Logger().Warn("config watch disabled", "err", err)
		}
	}

	a.Logger().Info("viewer started", "bindings", len(a.Bindings()))
	return v.Run(ctx, a)
}

// attachFeedback reports gestures that ran nothing.
func attachFeedback(p *provider.Provider, v *terminal.Viewer) error {
	_, err := p.Subscribe(event.TopicGestureUnmatched, func(_ context.Context, r provider.Result) error {
		if r.Combo.IsEmpty() {
			return nil
		}
		v.Notify(fmt.Sprintf("no binding for %s (%s)", r.Combo, r.Combo.Words()))
		return nil
	})
	return err
}
