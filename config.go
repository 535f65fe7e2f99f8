package sandtrack

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrMaxPointDistance is reported for a sample spacing that is not
// positive.
var ErrMaxPointDistance = errors.New("sandtrack: max point distance must be positive")

// Model describes the physical table.
type Model struct {
	// Radius of the drawable area, in meters.
	TableRadius float64
	// Motor steps for one revolution of the arm.
	StepsPerRevolution float64
	// Motor steps per meter of radial travel.
	StepsPerMeter float64
}

// Resolution returns the coarsest distance, in meters, that the device can
// resolve anywhere on the table. Angular resolution is worst at the rim.
func (m Model) Resolution() float64 {
	var angular, radial float64
	if m.StepsPerRevolution > 0 {
		angular = 2 * math.Pi * m.TableRadius / m.StepsPerRevolution
	}
	if m.StepsPerMeter > 0 {
		radial = 1 / m.StepsPerMeter
	}
	return max(angular, radial)
}

// Config holds the parameters of a [Drawing].
type Config struct {
	Model Model

	// ErrorBound is the largest allowed deviation of the drawn path from
	// the desired one, in meters. When zero, the device resolution is used.
	ErrorBound float64

	// MaxPointDistance is the sample spacing used to densify lines before
	// fitting, in normalized units.
	MaxPointDistance float64
}

// DefaultConfig returns the configuration for a table of 30 cm radius.
func DefaultConfig() Config {
	return Config{
		Model: Model{
			TableRadius:        0.3,
			StepsPerRevolution: 16000,
			StepsPerMeter:      40000,
		},
		ErrorBound:       0.0005,
		MaxPointDistance: 0.002,
	}
}

// Tolerance returns the fit tolerance in normalized units, where 1 is the
// table radius.
func (c Config) Tolerance() float64 {
	eb := c.ErrorBound
	if eb <= 0 {
		eb = c.Model.Resolution()
	}
	return eb / c.Model.TableRadius
}

// Validate reports whether c can be used for drawing.
func (c Config) Validate() error {
	switch {
	case !(c.Model.TableRadius > 0):
		return errors.New("sandtrack: table radius must be positive")
	case !(c.MaxPointDistance > 0):
		return ErrMaxPointDistance
	case !(c.Tolerance() > 0):
		return errors.New("sandtrack: no error bound and no device resolution")
	}
	return nil
}

type xmlConfig struct {
	XMLName            xml.Name `xml:"Config"`
	TableRadius        float64
	StepsPerRevolution float64
	StepsPerMeter      float64
	ErrorBound         float64
	MaxPointDistance   float64
}

// ReadConfig reads a configuration in XML form. Fields missing from the
// input keep their values from [DefaultConfig].
func ReadConfig(r io.Reader) (Config, error) {
	def := DefaultConfig()
	x := xmlConfig{
		TableRadius:        def.Model.TableRadius,
		StepsPerRevolution: def.Model.StepsPerRevolution,
		StepsPerMeter:      def.Model.StepsPerMeter,
		ErrorBound:         def.ErrorBound,
		MaxPointDistance:   def.MaxPointDistance,
	}
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return Config{}, fmt.Errorf("sandtrack: reading config: %w", err)
	}
	c := Config{
		Model: Model{
			TableRadius:        x.TableRadius,
			StepsPerRevolution: x.StepsPerRevolution,
			StepsPerMeter:      x.StepsPerMeter,
		},
		ErrorBound:       x.ErrorBound,
		MaxPointDistance: x.MaxPointDistance,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write writes c in the form read by [ReadConfig].
func (c Config) Write(w io.Writer) error {
	x := xmlConfig{
		TableRadius:        c.Model.TableRadius,
		StepsPerRevolution: c.Model.StepsPerRevolution,
		StepsPerMeter:      c.Model.StepsPerMeter,
		ErrorBound:         c.ErrorBound,
		MaxPointDistance:   c.MaxPointDistance,
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(x); err != nil {
		return fmt.Errorf("sandtrack: writing config: %w", err)
	}
	return nil
}
