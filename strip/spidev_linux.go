//go:build linux

package strip

import (
	"fmt"
	"os"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Produced from <linux/spi/spidev.h>, see ioctl_test.go for the derivation.
const spiIOCWrMaxSpeedHz = 0x40046B04

// SPIDev is a Sink backed by a raw spidev device file, e.g. /dev/spidev0.0.
// Writes to spidev complete synchronously, so Flush has nothing to do.
type SPIDev struct {
	f *os.File
}

// OpenSPIDev opens the device and, if speedHz is non-zero, sets the SPI clock.
func OpenSPIDev(dev string, speedHz uint32) (*SPIDev, error) {
	f, err := os.OpenFile(dev, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", dev, err)
	}
	if speedHz != 0 {
		_, _, errno := unix.Syscall(
			unix.SYS_IOCTL,
			f.Fd(),
			uintptr(spiIOCWrMaxSpeedHz),
			uintptr(unsafe.Pointer(&speedHz)),
		)
		if errno != 0 {
			f.Close()
			return nil, fmt.Errorf("couldn't set SPI speed on %s: %v", dev, errno)
		}
	}
	log.Debugf("Opened %s at %dHz", dev, speedHz)
	return &SPIDev{f}, nil
}

func (d *SPIDev) Write(b []byte) (int, error) {
	return d.f.Write(b)
}

func (d *SPIDev) Flush() error {
	return nil
}

func (d *SPIDev) Close() error {
	return d.f.Close()
}
