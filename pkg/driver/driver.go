package driver

type OpenCloser interface {
	Open() error
	Close() error
}

type Infoer interface {
	Info() Info
}

// Info describes a registered device. It's static for the lifetime
// of the driver.
type Info struct {
	Label      string
	Name       string
	DeviceType DeviceType
	Facing     Facing
}

// Adapter is the minimal contract a device implementation has to fulfill
// to be registered to the Manager.
type Adapter interface {
	OpenCloser
}

// Driver is an Adapter wrapped by the Manager. It tracks the adapter's
// state and carries a unique ID.
type Driver interface {
	Adapter
	Infoer
	ID() string
	Status() State
}
