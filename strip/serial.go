package strip

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

// SerialSink is a Sink backed by a serial port, for strands hanging off a USB
// bridge rather than a native SPI bus. Flush drains the OS transmit buffer so
// the latch timing holds.
type SerialSink struct {
	port serial.Port
}

// OpenSerial opens the named port (e.g. /dev/ttyUSB0) in 8N1 at baud.
func OpenSerial(device string, baud int) (*SerialSink, error) {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", device, err)
	}
	log.Debugf("Opened %s at %d baud", device, baud)
	return &SerialSink{port}, nil
}

func (s *SerialSink) Write(b []byte) (int, error) {
	return s.port.Write(b)
}

func (s *SerialSink) Flush() error {
	return s.port.Drain()
}

func (s *SerialSink) Close() error {
	return s.port.Close()
}
