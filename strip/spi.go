package strip

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// SPISink is a Sink backed by a periph.io SPI port. Tx completes
// synchronously, so Flush has nothing to do.
type SPISink struct {
	port spi.PortCloser
	conn spi.Conn
}

// OpenSPI opens the SPI port registered under name ("" for the first one) at
// the given clock speed. The LPD8806 has no chip select and takes mode 0.
func OpenSPI(name string, speed physic.Frequency) (*SPISink, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("couldn't init host: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("couldn't open SPI port %q: %w", name, err)
	}
	conn, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("couldn't connect to SPI port %q: %w", name, err)
	}
	log.Debugf("Opened SPI port %q at %s", name, speed)
	return &SPISink{port: port, conn: conn}, nil
}

func (s *SPISink) Write(b []byte) (int, error) {
	if err := s.conn.Tx(b, nil); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (s *SPISink) Flush() error {
	return nil
}

func (s *SPISink) Close() error {
	return s.port.Close()
}
