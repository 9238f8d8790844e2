// Package opencamera selects and opens a camera, preferring a back-facing
// one when the caller has no preference.
package opencamera

import (
	"errors"
	"fmt"

	"github.com/pion/logging"
	internallogging "github.com/pion/opencamera/internal/logging"
	"github.com/pion/opencamera/pkg/driver"
	"github.com/pion/opencamera/pkg/driver/availability"
)

const loggerScope = "opencamera"

var (
	// ErrNoCameras is returned when the platform reports zero cameras.
	ErrNoCameras = errors.New("no cameras")
	// ErrCameraNotFound is returned when an explicitly requested camera id
	// is out of range.
	ErrCameraNotFound = errors.New("requested camera does not exist")
)

// Option is a type of Open functional option.
type Option func(*options)

type options struct {
	logger  logging.LeveledLogger
	metrics *Metrics
}

// WithLogger specifies the logger Open reports its decisions to.
func WithLogger(l logging.LeveledLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records the outcome of Open to m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// strategy acquires a camera from a platform.
type strategy interface {
	name() string
	open(p Platform, cameraID int, logger logging.LeveledLogger) (driver.Driver, outcome, error)
}

func selectStrategy(level int) strategy {
	if level < LevelMultiCamera {
		return legacyStrategy{}
	}
	return enumerateStrategy{}
}

// Open opens the camera cameraID of p. A negative cameraID, such as
// NoRequestedCamera, opens the first back-facing camera, or camera #0 if none
// faces back.
//
// An explicit cameraID out of range is an error, not silently corrected.
// On platforms below LevelMultiCamera, cameraID is ignored and the default
// camera is opened.
func Open(p Platform, cameraID int, opts ...Option) (driver.Driver, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internallogging.NewLogger(loggerScope)
	}

	s := selectStrategy(p.Level())
	d, res, err := s.open(p, cameraID, o.logger)
	o.metrics.observe(s.name(), res)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// legacyStrategy only knows the platform's default camera.
type legacyStrategy struct{}

func (legacyStrategy) name() string { return "legacy" }

func (legacyStrategy) open(p Platform, _ int, logger logging.LeveledLogger) (driver.Driver, outcome, error) {
	logger.Debug("Camera enumeration unavailable; opening default camera")
	d, err := p.OpenDefault()
	if err == nil && d == nil {
		err = availability.ErrNoDevice
	}
	switch {
	case errors.Is(err, availability.ErrNoDevice):
		return nil, outcomeNoCameras, err
	case err != nil:
		return nil, outcomeError, err
	}
	return d, outcomeOpened, nil
}

// enumerateStrategy picks a camera index by looking at every camera's facing.
type enumerateStrategy struct{}

func (enumerateStrategy) name() string { return "enumerate" }

func (enumerateStrategy) open(p Platform, cameraID int, logger logging.LeveledLogger) (driver.Driver, outcome, error) {
	numCameras := p.NumberOfCameras()
	if numCameras == 0 {
		logger.Warn("No cameras!")
		return nil, outcomeNoCameras, ErrNoCameras
	}

	explicitRequest := cameraID >= 0
	if !explicitRequest {
		index, err := firstBackFacing(p, numCameras)
		if err != nil {
			return nil, outcomeError, err
		}
		cameraID = index
	}

	if cameraID < numCameras {
		logger.Infof("Opening camera #%d", cameraID)
		return openIndex(p, cameraID, outcomeOpened)
	}

	if explicitRequest {
		logger.Warnf("Requested camera does not exist: %d", cameraID)
		return nil, outcomeNotFound, fmt.Errorf("%w: %d", ErrCameraNotFound, cameraID)
	}

	logger.Info("No camera facing back; returning camera #0")
	return openIndex(p, 0, outcomeFallback)
}

// firstBackFacing returns the lowest index of a back-facing camera, or
// numCameras if there's none.
func firstBackFacing(p Platform, numCameras int) (int, error) {
	index := 0
	for index < numCameras {
		info, err := p.CameraInfo(index)
		if err != nil {
			return 0, fmt.Errorf("camera #%d info: %w", index, err)
		}
		if info.Facing == driver.FacingBack {
			break
		}
		index++
	}
	return index, nil
}

func openIndex(p Platform, index int, res outcome) (driver.Driver, outcome, error) {
	d, err := p.Open(index)
	if err == nil && d == nil {
		err = availability.ErrNoDevice
	}
	if err != nil {
		return nil, outcomeError, fmt.Errorf("open camera #%d: %w", index, err)
	}
	return d, res, nil
}
