package models

import (
	"context"
	"sync"

	"github.com/allbin/go-msmouse"
)

// DriverStatusMsg reports lifecycle transitions of the background driver.
type DriverStatusMsg struct {
	Running bool
	Error   error
}

// WatchModel holds the driver-facing state shared between the TUI and
// the polling goroutine.
type WatchModel struct {
	mouse    *msmouse.Mouse
	portPath string

	running bool
	paused  bool
	err     error
	ready   bool
	seq     uint64

	cancel context.CancelFunc
	ctx    context.Context
	mu     sync.RWMutex
}

func NewWatchModel(portPath string) *WatchModel {
	ctx, cancel := context.WithCancel(context.Background())

	return &WatchModel{
		portPath: portPath,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (m *WatchModel) GetMouse() *msmouse.Mouse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mouse
}

func (m *WatchModel) SetMouse(mouse *msmouse.Mouse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = mouse
}

func (m *WatchModel) GetPortPath() string {
	return m.portPath
}

func (m *WatchModel) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

func (m *WatchModel) SetRunning(running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = running
}

func (m *WatchModel) IsPaused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

func (m *WatchModel) TogglePaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = !m.paused
	return m.paused
}

func (m *WatchModel) GetError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *WatchModel) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *WatchModel) IsReady() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

func (m *WatchModel) SetReady(ready bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ready = ready
}

// NextSeq returns a monotonically increasing event sequence number.
func (m *WatchModel) NextSeq() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return m.seq
}

func (m *WatchModel) EventCount() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.seq
}

func (m *WatchModel) GetContext() context.Context {
	return m.ctx
}

func (m *WatchModel) Cancel() {
	m.cancel()
}

// Cleanup stops the driver and cancels the polling context. Safe to
// call more than once.
func (m *WatchModel) Cleanup() {
	m.cancel()

	m.mu.Lock()
	mouse := m.mouse
	m.running = false
	m.mu.Unlock()

	if mouse != nil {
		mouse.Stop()
	}
}
