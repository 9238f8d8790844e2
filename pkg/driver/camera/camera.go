/*
Package camera provides a video camera driver.

# Device Label Generation Rules

On Linux, the device label will be in the format of:

	pci-0000:00:00.0-usb-0:0:0.0-video-index0;video0

If /dev/v4l/by-path/* is not available (for example in a docker container without
bindings in /dev/v4l/by-path/), it will be:

	video0;video0

# Facing

The facing of a camera is read from the V4L2 camera orientation control when
the kernel driver exposes it. Otherwise it's reported as driver.FacingUnknown.
*/
package camera

import "github.com/pion/opencamera/pkg/driver"

// LabelSeparator is used to separate labels for a driver that
// is found from multiple locations on a host.
const LabelSeparator = ";"

// V4L2_CID_CAMERA_ORIENTATION and its menu values, from linux/v4l2-controls.h.
const (
	cidCameraOrientation = 0x009a0900 + 34

	orientationFront    = 0
	orientationBack     = 1
	orientationExternal = 2
)

func facingFromOrientation(v int32) driver.Facing {
	switch v {
	case orientationFront:
		return driver.FacingFront
	case orientationBack:
		return driver.FacingBack
	case orientationExternal:
		return driver.FacingExternal
	}
	return driver.FacingUnknown
}
