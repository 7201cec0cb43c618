package transport

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shirou/gopsutil/v3/process"
)

// HostExitedMsg is delivered when the watched host process is gone.
type HostExitedMsg struct {
	PID int32
}

// pidExists is swapped in tests.
var pidExists = process.PidExistsWithContext

// WatchHost polls pid every interval and returns HostExitedMsg once it no
// longer exists. Lookup errors count as still alive. It returns nil when
// ctx ends first.
func WatchHost(ctx context.Context, pid int32, interval time.Duration) tea.Cmd {
	if pid <= 0 {
		return nil
	}
	if interval <= 0 {
		interval = time.Second
	}
	return func() tea.Msg {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			if !hostAlive(ctx, pid) {
				return HostExitedMsg{PID: pid}
			}
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	}
}

func hostAlive(ctx context.Context, pid int32) bool {
	probe, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	exists, err := pidExists(probe, pid)
	if err != nil {
		return true
	}
	return exists
}
