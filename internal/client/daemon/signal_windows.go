//go:build windows

package daemon

import "context"

// handleSignals на Windows нет SIGUSR1; focus доступен через команду focus
func (d *Daemon) handleSignals(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
