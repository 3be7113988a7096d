//go:build linux

package transport

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// socketCAN implements Bus over Linux SocketCAN via golang.org/x/sys/unix,
// binding a raw CAN_RAW socket to the named interface.
type socketCAN struct {
	fd int
}

// OpenSocketCAN binds a raw CAN socket to the named interface (e.g. "can0").
// It fails if the interface is down or absent.
func OpenSocketCAN(ifaceName string) (Bus, error) {
	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, unix.CAN_RAW)
	if err != nil {
		return nil, fmt.Errorf("transport: open can interface: %w", err)
	}

	iface, err := net.InterfaceByName(ifaceName)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("transport: request can interface %s: %w", ifaceName, err)
	}
	if iface.Flags&net.FlagUp == 0 {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("transport: interface %s is down", ifaceName)
	}

	addr := &unix.SockaddrCAN{Ifindex: iface.Index}
	if err := unix.Bind(fd, addr); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("transport: bind can address: %w", err)
	}

	return &socketCAN{fd: fd}, nil
}

// SetTimeout configures SO_RCVTIMEO. Negative durations are clamped to zero.
func (s *socketCAN) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	tv := unix.NsecToTimeval(d.Nanoseconds())
	_ = unix.SetsockoptTimeval(s.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)
}

// Send writes one frame using the Linux can_frame binary layout.
func (s *socketCAN) Send(frame Frame) error {
	buf, err := frame.MarshalBinary()
	if err != nil {
		return err
	}
	n, err := unix.Write(s.fd, buf)
	if err != nil {
		return fmt.Errorf("transport: send can frame: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("transport: short can frame write: wrote %d of %d", n, len(buf))
	}
	return nil
}

// Receive blocks (up to the configured SetTimeout) for one frame.
func (s *socketCAN) Receive() (Frame, error) {
	buf := make([]byte, 16)
	n, err := unix.Read(s.fd, buf)
	if err != nil {
		return Frame{}, fmt.Errorf("transport: read can frame: %w", err)
	}
	if n < 16 {
		return Frame{}, fmt.Errorf("transport: short can frame read: got %d bytes", n)
	}

	var f Frame
	if err := f.UnmarshalBinary(buf); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Close releases the underlying socket.
func (s *socketCAN) Close() error {
	return unix.Close(s.fd)
}
