//go:build !linux

package camera

import "github.com/pion/opencamera/pkg/driver"

// Initialize finds and registers camera devices to the global manager.
// Camera discovery is only implemented on Linux.
func Initialize() {}

// InitializeWith finds and registers camera devices to m.
func InitializeWith(m *driver.Manager) {}
