package msmouse

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// EventSink receives decoded pointer events. Delivery is fire-and-forget;
// the sink must not block for long or it will stall packet decoding.
type EventSink interface {
	Dispatch(ev Event)
}

// EventSinkFunc adapts a plain function to the EventSink interface.
type EventSinkFunc func(ev Event)

func (f EventSinkFunc) Dispatch(ev Event) { f(ev) }

// discardSink swallows events. Used when no sink is configured, which is
// fine for probe-only use.
type discardSink struct{}

func (discardSink) Dispatch(Event) {}

// Mouse drives a Microsoft serial mouse attached to a Transport. A Mouse
// is created idle; Probe checks for a device without leaving a trace,
// Start commits the transport to mouse duty and begins polling, Stop tears
// the polling loop down and releases the transport.
//
// Probe/Start/Stop must not be called concurrently with each other. The
// polling loop itself runs on its own goroutine and is the only user of
// the transport between Start and Stop.
type Mouse struct {
	transport Transport
	sink      EventSink
	logger    *zap.Logger
	settle    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Mouse.
type Option func(*Mouse)

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Mouse) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithSettleDelay overrides the identification settle delay. Mostly useful
// against simulated transports that answer instantly.
func WithSettleDelay(d time.Duration) Option {
	return func(m *Mouse) {
		if d >= 0 {
			m.settle = d
		}
	}
}

// New creates a Mouse for the given transport. The sink may be nil when
// the Mouse is only used for probing.
func New(t Transport, sink EventSink, opts ...Option) *Mouse {
	m := &Mouse{
		transport: t,
		sink:      sink,
		logger:    zap.NewNop(),
		settle:    idSettleDelay,
	}
	if m.sink == nil {
		m.sink = discardSink{}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Probe checks non-destructively whether a compatible mouse is attached.
// It acquires the transport, snapshots the current settings, configures
// the port for the mouse protocol and runs the identification handshake;
// whatever the outcome, the saved settings are restored and the transport
// released before Probe returns. Failure detail is logged rather than
// returned, since callers only need a match / no-match answer.
func (m *Mouse) Probe() bool {
	if err := m.transport.Acquire(); err != nil {
		m.logger.Debug("probe: could not acquire port", zap.Error(err))
		return false
	}
	defer m.releasePort()

	saved, err := ReadSettings(m.transport)
	if err != nil {
		m.logger.Debug("probe: could not save port settings", zap.Error(err))
		return false
	}
	defer func() {
		if err := saved.Apply(m.transport); err != nil {
			m.logger.Warn("probe: could not restore port settings", zap.Error(err))
		}
	}()

	if err := m.setupPort(); err != nil {
		m.logger.Debug("probe: port setup failed", zap.Error(err))
		return false
	}
	if _, err := identify(m.transport, m.settle); err != nil {
		m.logger.Debug("probe: no mouse found", zap.Error(err))
		return false
	}

	m.logger.Info("probe: serial mouse present")
	return true
}

// Start commits the transport to the mouse: it acquires the port, applies
// the mouse protocol settings permanently, verifies the device identity
// and spawns the polling loop. On any failure the port is released again
// and no partial running state is left behind.
func (m *Mouse) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return ErrAlreadyStarted
	}

	if err := m.transport.Acquire(); err != nil {
		m.logger.Error("start: could not acquire port", zap.Error(err))
		return fmt.Errorf("acquiring port: %w", err)
	}
	if err := m.setupPort(); err != nil {
		m.logger.Error("start: port setup failed", zap.Error(err))
		m.releasePort()
		return err
	}
	if _, err := identify(m.transport, m.settle); err != nil {
		m.logger.Error("start: identification failed", zap.Error(err))
		m.releasePort()
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	go m.poll(ctx)

	m.logger.Info("serial mouse started")
	return nil
}

// Stop terminates the polling loop, waits for it to exit and releases the
// transport. Stopping an idle or already-stopped Mouse is a no-op.
func (m *Mouse) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel == nil {
		return
	}

	m.cancel()
	<-m.done
	m.cancel = nil
	m.done = nil

	m.releasePort()
	m.logger.Info("serial mouse stopped")
}

// Running reports whether the polling loop is active.
func (m *Mouse) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

// setupPort applies the mouse protocol settings and activates the port.
func (m *Mouse) setupPort() error {
	if err := MouseSettings().Apply(m.transport); err != nil {
		return err
	}
	if err := m.transport.SetActive(true); err != nil {
		return fmt.Errorf("activating port: %w", err)
	}
	return nil
}

// releasePort deactivates the port best-effort and releases the claim
// unconditionally, so the transport becomes claimable again even when
// deactivation fails.
func (m *Mouse) releasePort() {
	if err := m.transport.SetActive(false); err != nil {
		m.logger.Debug("could not deactivate port", zap.Error(err))
	}
	if err := m.transport.Release(); err != nil {
		m.logger.Warn("could not release port", zap.Error(err))
	}
}

// poll reads packets until the context is cancelled. Failed or short reads
// are retried silently; the transport's bounded read wait keeps the loop
// responsive to cancellation even while the line is quiet. A packet with a
// bad framing bit triggers a receive-buffer flush, since a misaligned
// stream can only be recovered by forcing resynchronization on the next
// valid header byte.
func (m *Mouse) poll(ctx context.Context) {
	defer close(m.done)

	var packet [PacketLength]byte
	for {
		if ctx.Err() != nil {
			return
		}

		n, err := m.transport.Read(packet[:])
		if err != nil || n != PacketLength {
			continue
		}

		ev, ok := DecodePacket(packet[:])
		if !ok {
			if err := m.transport.Flush(); err != nil {
				m.logger.Debug("poll: flush after bad framing failed", zap.Error(err))
			}
			continue
		}

		ev.Timestamp = time.Now()
		m.sink.Dispatch(ev)
	}
}
