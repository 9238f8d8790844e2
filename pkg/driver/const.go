package driver

// DeviceType represents human readable device type. DeviceType
// can be useful to filter the drivers too.
type DeviceType string

const (
	// Camera represents camera devices
	Camera DeviceType = "camera"
	// Microphone represents microphone devices
	Microphone DeviceType = "microphone"
	// Screen represents screen devices
	Screen DeviceType = "screen"
)

// Facing is the direction a camera points to, relative to the user
// holding the device.
type Facing string

const (
	// FacingUnknown is used when the hardware doesn't report a direction.
	FacingUnknown Facing = ""
	// FacingFront points towards the user.
	FacingFront Facing = "front"
	// FacingBack points away from the user.
	FacingBack Facing = "back"
	// FacingExternal is a camera that can be moved freely, e.g. a USB webcam.
	FacingExternal Facing = "external"
)

// ParseFacing converts a human readable facing name into Facing. Unknown
// names map to FacingUnknown and false.
func ParseFacing(s string) (Facing, bool) {
	switch Facing(s) {
	case FacingFront, FacingBack, FacingExternal:
		return Facing(s), true
	case "unknown":
		return FacingUnknown, true
	}
	return FacingUnknown, false
}

func (f Facing) String() string {
	if f == FacingUnknown {
		return "unknown"
	}
	return string(f)
}
