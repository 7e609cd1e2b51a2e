package strip

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"
	"periph.io/x/host/v3"

	"github.com/sweeney/square-timer/internal/logic"
)

// APA102Strip drives a chain of APA102 cells on an SPI port.
type APA102Strip struct {
	port  spi.PortCloser
	dev   *apa102.Dev
	frame logic.Frame
	buf   []byte
}

// NewAPA102Strip opens the named SPI port ("" selects the first one) and
// configures a chain of logic.NumCells cells.
func NewAPA102Strip(portName string) (*APA102Strip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}

	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", portName, err)
	}

	opts := apa102.DefaultOpts
	opts.NumPixels = logic.NumCells
	opts.Intensity = 255
	dev, err := apa102.New(port, &opts)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("init apa102: %w", err)
	}

	return &APA102Strip{
		port: port,
		dev:  dev,
		buf:  make([]byte, 0, 3*logic.NumCells),
	}, nil
}

// SetFrame stores the pending frame.
func (s *APA102Strip) SetFrame(f logic.Frame) {
	s.frame = f
}

// Show writes the pending frame to the chain.
func (s *APA102Strip) Show() error {
	s.buf = pack(s.buf, s.frame, 255)
	if _, err := s.dev.Write(s.buf); err != nil {
		return fmt.Errorf("write apa102: %w", err)
	}
	return nil
}

// SetBrightness maps the global brightness onto the chain intensity, which
// uses the cells' own PWM before reducing color depth.
func (s *APA102Strip) SetBrightness(level uint8) {
	s.dev.Intensity = level
}

// Clear blanks the chain.
func (s *APA102Strip) Clear() error {
	s.frame = logic.Frame{}
	return s.Show()
}

// Close blanks the chain and releases the SPI port.
func (s *APA102Strip) Close() error {
	var errs []error
	if err := s.dev.Halt(); err != nil {
		errs = append(errs, fmt.Errorf("halt apa102: %w", err))
	}
	if err := s.port.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close spi port: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
