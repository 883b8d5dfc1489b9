// Package ttyport implements the msmouse Transport interface on top of a
// Linux serial device using termios and modem-control ioctls.
package ttyport

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/allbin/go-msmouse"
)

// readTickTenths bounds how long a Read blocks with no data, in tenths of
// a second (termios VTIME). A quiet line makes Read return a zero count
// within this window, which keeps the driver's polling loop responsive to
// cancellation without a separate interruption mechanism.
const readTickTenths = 2

// Port is a serial device implementing msmouse.Transport.
type Port struct {
	mu     sync.RWMutex
	fd     int
	path   string
	closed bool
}

// Ensure Port implements the transport interface at compile time
var _ msmouse.Transport = (*Port)(nil)

// Open opens a serial device in raw mode. The port starts with whatever
// line settings the device already has; only the input/output processing
// flags and the read tick are touched here, so a later settings snapshot
// still sees the original rate, size and stop bits.
func Open(device string) (*Port, error) {
	fd, err := unix.Open(device, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", device, err)
	}

	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to get termios: %w", err)
	}

	// Raw mode: no input, output or line processing.
	tio.Iflag = 0
	tio.Oflag = 0
	tio.Lflag = 0
	tio.Cflag |= unix.CREAD | unix.CLOCAL
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = readTickTenths

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to set termios: %w", err)
	}

	return &Port{fd: fd, path: device}, nil
}

// Path returns the device path the port was opened with.
func (p *Port) Path() string {
	return p.path
}

// Close releases any claim and closes the device.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	unix.Flock(p.fd, unix.LOCK_UN)
	err := unix.Close(p.fd)
	p.closed = true
	return err
}

// Acquire claims the device exclusively. The claim is advisory between
// cooperating processes (flock) and enforced against later opens with
// TIOCEXCL. Fails with msmouse.ErrPortHeld if another holder exists.
func (p *Port) Acquire() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if err := unix.Flock(p.fd, unix.LOCK_EX|unix.LOCK_NB); err != nil {
		if err == unix.EWOULDBLOCK {
			return msmouse.ErrPortHeld
		}
		return fmt.Errorf("failed to lock %s: %w", p.path, err)
	}

	if err := unix.IoctlSetInt(p.fd, unix.TIOCEXCL, 0); err != nil {
		unix.Flock(p.fd, unix.LOCK_UN)
		return fmt.Errorf("failed to set exclusive mode on %s: %w", p.path, err)
	}
	return nil
}

// Release drops the exclusive claim. Safe to call without a prior Acquire.
func (p *Port) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	unix.IoctlSetInt(p.fd, unix.TIOCNXCL, 0)
	return unix.Flock(p.fd, unix.LOCK_UN)
}

// SetActive enables or disables the receiver (termios CREAD).
func (p *Port) SetActive(active bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	tio, err := unix.IoctlGetTermios(p.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	if active {
		tio.Cflag |= unix.CREAD
	} else {
		tio.Cflag &^= unix.CREAD
	}
	if err := unix.IoctlSetTermios(p.fd, unix.TCSETS, tio); err != nil {
		return fmt.Errorf("failed to set termios: %w", err)
	}
	return nil
}

// RequestSetting reads one transport parameter.
func (p *Port) RequestSetting(s msmouse.Setting) (uint32, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrClosed
	}

	switch s {
	case msmouse.SettingDataRate, msmouse.SettingDataSize, msmouse.SettingStopBits:
		tio, err := unix.IoctlGetTermios(p.fd, unix.TCGETS)
		if err != nil {
			return 0, fmt.Errorf("failed to get termios: %w", err)
		}
		switch s {
		case msmouse.SettingDataRate:
			code := tio.Ispeed
			if _, ok := codeToBaud(code); !ok {
				code = tio.Cflag & unix.CBAUD
			}
			rate, ok := codeToBaud(code)
			if !ok {
				return 0, ErrInvalidBaudRate
			}
			return rate, nil
		case msmouse.SettingDataSize:
			return csizeToDataBits(tio.Cflag), nil
		default:
			if tio.Cflag&unix.CSTOPB != 0 {
				return 2, nil
			}
			return 1, nil
		}

	case msmouse.SettingFlowControl:
		status, err := unix.IoctlGetInt(p.fd, unix.TIOCMGET)
		if err != nil {
			return 0, fmt.Errorf("failed to get modem status: %w", err)
		}
		return uint32(tiocmToFlow(status)), nil

	default:
		return 0, msmouse.ErrUnknownSetting
	}
}

// ApplySetting writes one transport parameter.
func (p *Port) ApplySetting(s msmouse.Setting, value uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	switch s {
	case msmouse.SettingDataRate, msmouse.SettingDataSize, msmouse.SettingStopBits:
		tio, err := unix.IoctlGetTermios(p.fd, unix.TCGETS)
		if err != nil {
			return fmt.Errorf("failed to get termios: %w", err)
		}
		switch s {
		case msmouse.SettingDataRate:
			code, ok := baudToCode(value)
			if !ok {
				return ErrInvalidBaudRate
			}
			tio.Cflag = (tio.Cflag &^ unix.CBAUD) | code
			tio.Ispeed = code
			tio.Ospeed = code
		case msmouse.SettingDataSize:
			cs, ok := dataBitsToCSIZE(value)
			if !ok {
				return ErrInvalidDataBits
			}
			tio.Cflag = (tio.Cflag &^ unix.CSIZE) | cs
		default:
			switch value {
			case 1:
				tio.Cflag &^= unix.CSTOPB
			case 2:
				tio.Cflag |= unix.CSTOPB
			default:
				return ErrInvalidStopBits
			}
		}
		if err := unix.IoctlSetTermios(p.fd, unix.TCSETS, tio); err != nil {
			return fmt.Errorf("failed to set termios: %w", err)
		}
		return nil

	case msmouse.SettingFlowControl:
		want := flowToTIOCM(msmouse.FlowControl(value))
		all := unix.TIOCM_RTS | unix.TIOCM_DTR
		if set := want & all; set != 0 {
			if err := unix.IoctlSetInt(p.fd, unix.TIOCMBIS, set); err != nil {
				return fmt.Errorf("failed to assert control lines: %w", err)
			}
		}
		if clear := ^want & all; clear != 0 {
			if err := unix.IoctlSetInt(p.fd, unix.TIOCMBIC, clear); err != nil {
				return fmt.Errorf("failed to deassert control lines: %w", err)
			}
		}
		return nil

	default:
		return msmouse.ErrUnknownSetting
	}
}

// Flush discards any unread input data.
func (p *Port) Flush() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCFLSH, unix.TCIFLUSH)
}

// Read fills buf from the device. It keeps reading while bytes are
// arriving and returns a short count when the line goes quiet for a full
// read tick, so callers are never blocked indefinitely. At mouse data
// rates the bytes of one packet arrive far inside a single tick; a short
// count therefore means a genuinely interrupted packet, not a slow one.
func (p *Port) Read(buf []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrClosed
	}

	total := 0
	for total < len(buf) {
		n, err := unix.Read(p.fd, buf[total:])
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return total, err
		}
		if n == 0 {
			// Read tick elapsed with no data.
			return total, nil
		}
		total += n
	}
	return total, nil
}
