package msmouse

// Setting identifies a single configurable transport parameter. Settings
// are always read and written in the order they are declared here; the
// underlying hardware exposes them as independent control operations with
// no cross-field atomicity.
type Setting int

const (
	SettingDataRate Setting = iota
	SettingDataSize
	SettingStopBits
	SettingFlowControl
)

func (s Setting) String() string {
	switch s {
	case SettingDataRate:
		return "data-rate"
	case SettingDataSize:
		return "data-size"
	case SettingStopBits:
		return "stop-bits"
	case SettingFlowControl:
		return "flow-control"
	default:
		return "unknown"
	}
}

// FlowControl is a bitmask of asserted RS-232 control lines.
type FlowControl uint32

const (
	FlowRTS FlowControl = 1 << iota // Request To Send
	FlowDTR                         // Data Terminal Ready
)

// Transport is the serial channel below the driver. Implementations wrap a
// real RS-232 link (see the ttyport package) or a simulated one in tests.
//
// Acquire claims the transport exclusively and fails if it is already held
// elsewhere. Read blocks until the buffer is full, an error occurs, or the
// transport's own bounded wait elapses; it may return a short count, which
// callers treat as "no complete data yet". SetActive is a best-effort
// enable/disable of the receive path.
type Transport interface {
	Acquire() error
	Release() error
	SetActive(active bool) error
	RequestSetting(s Setting) (uint32, error)
	ApplySetting(s Setting, value uint32) error
	Flush() error
	Read(buf []byte) (int, error)
}
