package camera

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blackjack/webcam"
	pionlogging "github.com/pion/logging"
	"github.com/pion/opencamera/internal/logging"
	"github.com/pion/opencamera/pkg/driver"
	"github.com/pion/opencamera/pkg/driver/availability"
)

const loggerScope = "opencamera/driver/camera"

// Camera implementation using v4l2
// Reference: https://linuxtv.org/downloads/v4l-dvb-apis/uapi/v4l/videodev.html#videodev
type camera struct {
	path  string
	cam   *webcam.Webcam
	mutex sync.Mutex
}

// Initialize finds and registers camera devices to the global manager.
func Initialize() {
	InitializeWith(driver.GetManager())
}

// InitializeWith finds and registers camera devices to m.
func InitializeWith(m *driver.Manager) {
	discovered := make(map[string]struct{})
	discover(m, discovered, "/dev/v4l/by-path/*")
	discover(m, discovered, "/dev/video*")
}

func discover(m *driver.Manager, discovered map[string]struct{}, pattern string) {
	logger := logging.NewLogger(loggerScope)
	devices, err := filepath.Glob(pattern)
	if err != nil {
		// No v4l device.
		return
	}
	for _, device := range devices {
		label := filepath.Base(device)
		reallink, err := os.Readlink(device)
		if err != nil {
			reallink = label
		} else {
			reallink = filepath.Base(reallink)
		}
		if _, ok := discovered[reallink]; ok {
			continue
		}
		discovered[reallink] = struct{}{}

		cam := newCamera(device)
		info := cam.probe(logger)
		info.Label = label + LabelSeparator + reallink
		if err := m.Register(cam, info); err != nil {
			logger.Warnf("failed to register %s: %v", device, err)
		}
	}
}

func newCamera(path string) *camera {
	return &camera{path: path}
}

// probe briefly opens the device to read its name and orientation. A device
// that can't be opened is still registered with an unknown facing.
func (c *camera) probe(logger pionlogging.LeveledLogger) driver.Info {
	info := driver.Info{
		Name:       filepath.Base(c.path),
		DeviceType: driver.Camera,
		Facing:     driver.FacingUnknown,
	}

	cam, err := webcam.Open(c.path)
	if err != nil {
		logger.Warnf("probe %s: %v; registering with unknown facing", c.path, err)
		return info
	}
	defer cam.Close()

	if name, err := cam.GetName(); err == nil && name != "" {
		info.Name = strings.TrimSpace(name)
	}
	if v, err := cam.GetControl(webcam.ControlID(cidCameraOrientation)); err == nil {
		info.Facing = facingFromOrientation(v)
	}
	return info
}

func (c *camera) Open() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	cam, err := webcam.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return availability.ErrNoDevice
		}
		return err
	}

	c.cam = cam
	return nil
}

func (c *camera) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.cam == nil {
		return nil
	}

	err := c.cam.Close()
	c.cam = nil
	return err
}
