package msmouse

import (
	"fmt"
	"sync"
	"time"
)

// simTransport is a scripted in-memory transport. It keeps a settings
// store, counts claims, records every operation in order, and emits the
// configured identification byte when it sees DTR rise.
type simTransport struct {
	mu sync.Mutex

	held     bool
	active   bool
	settings map[Setting]uint32
	data     []byte
	ops      []string
	flushes  int

	// Scripted behavior.
	idResponse  byte // emitted on DTR rising edge when respondToID is set
	respondToID bool
	acquireErr  error
	readErr     error
	flushErr    error
	requestErr  map[Setting]error
	applyErr    map[Setting]error
}

var _ Transport = (*simTransport)(nil)

func newSimTransport() *simTransport {
	return &simTransport{
		settings: map[Setting]uint32{
			SettingDataRate:    9600,
			SettingDataSize:    8,
			SettingStopBits:    2,
			SettingFlowControl: 0,
		},
		requestErr: map[Setting]error{},
		applyErr:   map[Setting]error{},
	}
}

func (s *simTransport) record(format string, args ...any) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *simTransport) Acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acquireErr != nil {
		return s.acquireErr
	}
	if s.held {
		return ErrPortHeld
	}
	s.held = true
	s.record("acquire")
	return nil
}

func (s *simTransport) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = false
	s.record("release")
	return nil
}

func (s *simTransport) SetActive(active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
	s.record("active=%v", active)
	return nil
}

func (s *simTransport) RequestSetting(set Setting) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requestErr[set]; err != nil {
		return 0, err
	}
	s.record("request %s", set)
	return s.settings[set], nil
}

func (s *simTransport) ApplySetting(set Setting, value uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.applyErr[set]; err != nil {
		return err
	}
	if set == SettingFlowControl && s.respondToID {
		old := FlowControl(s.settings[set])
		if old&FlowDTR == 0 && FlowControl(value)&FlowDTR != 0 {
			s.data = append(s.data, s.idResponse)
		}
	}
	s.settings[set] = value
	s.record("apply %s=%d", set, value)
	return nil
}

func (s *simTransport) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flushErr != nil {
		return s.flushErr
	}
	s.data = nil
	s.flushes++
	s.record("flush")
	return nil
}

func (s *simTransport) Read(buf []byte) (int, error) {
	s.mu.Lock()
	if s.readErr != nil {
		err := s.readErr
		s.mu.Unlock()
		return 0, err
	}
	n := copy(buf, s.data)
	s.data = s.data[n:]
	s.mu.Unlock()

	if n == 0 {
		// Simulate the bounded wait of a quiet line.
		time.Sleep(time.Millisecond)
	}
	return n, nil
}

// queue appends bytes to the pending input stream.
func (s *simTransport) queue(b ...byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, b...)
}

// snapshot returns a copy of the current settings store.
func (s *simTransport) snapshot() map[Setting]uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[Setting]uint32, len(s.settings))
	for k, v := range s.settings {
		out[k] = v
	}
	return out
}

func (s *simTransport) isHeld() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}

func (s *simTransport) opLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

func (s *simTransport) flushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}
