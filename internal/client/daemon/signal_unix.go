//go:build !windows

package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// handleSignals переводит SIGUSR1 в focus синхронизацию
func (d *Daemon) handleSignals(ctx context.Context) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			d.logger.Debug("Focus signal received")
			d.Focus()
		}
	}
}
