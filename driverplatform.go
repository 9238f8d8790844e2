package opencamera

import (
	"fmt"

	"github.com/pion/opencamera/pkg/driver"
	"github.com/pion/opencamera/pkg/driver/availability"
)

// PlatformOption is a type of DriverPlatform functional option.
type PlatformOption func(*DriverPlatform)

// WithLevel overrides the capability level reported by the platform.
// A level below LevelMultiCamera makes Open use the default camera only.
func WithLevel(level int) PlatformOption {
	return func(p *DriverPlatform) {
		p.level = level
	}
}

// DriverPlatform is a Platform backed by camera drivers registered to a
// driver.Manager. Camera indices follow registration order.
type DriverPlatform struct {
	manager *driver.Manager
	level   int
}

// NewDriverPlatform creates a Platform over the cameras registered to m.
// If m is nil, the global manager is used.
func NewDriverPlatform(m *driver.Manager, opts ...PlatformOption) *DriverPlatform {
	if m == nil {
		m = driver.GetManager()
	}

	p := &DriverPlatform{
		manager: m,
		level:   LevelMultiCamera,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *DriverPlatform) cameras() []driver.Driver {
	return p.manager.Query(driver.FilterVideoInput())
}

func (p *DriverPlatform) camera(index int) (driver.Driver, error) {
	cameras := p.cameras()
	if index < 0 || index >= len(cameras) {
		return nil, fmt.Errorf("camera #%d: %w", index, availability.ErrNoDevice)
	}
	return cameras[index], nil
}

func (p *DriverPlatform) Level() int {
	return p.level
}

func (p *DriverPlatform) NumberOfCameras() int {
	return len(p.cameras())
}

func (p *DriverPlatform) CameraInfo(index int) (CameraInfo, error) {
	d, err := p.camera(index)
	if err != nil {
		return CameraInfo{}, err
	}

	info := d.Info()
	return CameraInfo{
		Index:  index,
		Label:  info.Label,
		Name:   info.Name,
		Facing: info.Facing,
	}, nil
}

func (p *DriverPlatform) Open(index int) (driver.Driver, error) {
	d, err := p.camera(index)
	if err != nil {
		return nil, err
	}
	return openDriver(d)
}

func (p *DriverPlatform) OpenDefault() (driver.Driver, error) {
	backs := p.manager.Query(driver.FilterVideoInput(), driver.FilterFacing(driver.FacingBack))
	if len(backs) == 0 {
		return nil, availability.ErrNoDevice
	}
	return openDriver(backs[0])
}

func openDriver(d driver.Driver) (driver.Driver, error) {
	if err := d.Open(); err != nil {
		return nil, fmt.Errorf("%s: %w", d.Info().Label, err)
	}
	return d, nil
}
