package strip

import "io"

// Sink is the write-only byte stream a strand is driven through. Flush must
// not return until the written bytes have reached the device; the LPD8806
// latches a frame only once its reset bytes have gone out on the wire.
type Sink interface {
	io.Writer
	Flush() error
	Close() error
}
