package opencamera

import (
	"github.com/pion/opencamera/pkg/driver"
)

// NoRequestedCamera means no preference for which camera to open. Any
// negative camera id is treated the same way.
const NoRequestedCamera = -1

// LevelMultiCamera is the lowest platform level that can enumerate cameras
// and describe them one by one. Below it only the default camera can be opened.
const LevelMultiCamera = 9

// CameraInfo describes the camera at Index. It's a snapshot taken at
// enumeration time.
type CameraInfo struct {
	Index  int
	Label  string
	Name   string
	Facing driver.Facing
}

// Platform is the camera API of the host. Indices are in [0, NumberOfCameras()).
type Platform interface {
	// Level reports the platform capability level.
	Level() int
	NumberOfCameras() int
	CameraInfo(index int) (CameraInfo, error)
	// Open opens the camera at index. The returned driver is owned by the caller.
	Open(index int) (driver.Driver, error)
	// OpenDefault opens the platform's default camera, which is the first
	// back-facing one. It fails if there's no such camera.
	OpenDefault() (driver.Driver, error)
}

// Enumerate lists the cameras of p in index order.
func Enumerate(p Platform) ([]CameraInfo, error) {
	n := p.NumberOfCameras()
	infos := make([]CameraInfo, 0, n)
	for i := 0; i < n; i++ {
		info, err := p.CameraInfo(i)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
