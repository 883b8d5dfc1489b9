package msmouse

import "fmt"

// Microsoft serial mouse transport framing: 1200 baud, 7 data bits,
// 1 stop bit, RTS and DTR asserted.
const (
	mouseDataRate = 1200
	mouseDataSize = 7
	mouseStopBits = 1
	mouseFlow     = FlowRTS | FlowDTR
)

// PortSettings is a snapshot of the four transport parameters the driver
// touches. A snapshot taken before probing is reapplied afterwards so the
// transport is left exactly as found when no mouse is confirmed.
type PortSettings struct {
	DataRate    uint32
	DataSize    uint32
	StopBits    uint32
	FlowControl FlowControl
}

// MouseSettings returns the fixed transport configuration the Microsoft
// serial mouse protocol requires.
func MouseSettings() PortSettings {
	return PortSettings{
		DataRate:    mouseDataRate,
		DataSize:    mouseDataSize,
		StopBits:    mouseStopBits,
		FlowControl: mouseFlow,
	}
}

// ReadSettings reads the current transport configuration. Fields are read
// in fixed order and the first unreadable field aborts the remaining reads.
func ReadSettings(t Transport) (PortSettings, error) {
	var s PortSettings

	rate, err := t.RequestSetting(SettingDataRate)
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", SettingDataRate, err)
	}
	size, err := t.RequestSetting(SettingDataSize)
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", SettingDataSize, err)
	}
	stop, err := t.RequestSetting(SettingStopBits)
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", SettingStopBits, err)
	}
	flow, err := t.RequestSetting(SettingFlowControl)
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", SettingFlowControl, err)
	}

	s.DataRate = rate
	s.DataSize = size
	s.StopBits = stop
	s.FlowControl = FlowControl(flow)
	return s, nil
}

// Apply writes the snapshot back to the transport. Fields are applied in
// the same fixed order used by ReadSettings and the first rejected field
// aborts the rest, so a failure leaves the transport in a defined,
// inspectable partially-applied state.
func (s PortSettings) Apply(t Transport) error {
	if err := t.ApplySetting(SettingDataRate, s.DataRate); err != nil {
		return fmt.Errorf("applying %s: %w", SettingDataRate, err)
	}
	if err := t.ApplySetting(SettingDataSize, s.DataSize); err != nil {
		return fmt.Errorf("applying %s: %w", SettingDataSize, err)
	}
	if err := t.ApplySetting(SettingStopBits, s.StopBits); err != nil {
		return fmt.Errorf("applying %s: %w", SettingStopBits, err)
	}
	if err := t.ApplySetting(SettingFlowControl, uint32(s.FlowControl)); err != nil {
		return fmt.Errorf("applying %s: %w", SettingFlowControl, err)
	}
	return nil
}
