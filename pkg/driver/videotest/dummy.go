// Package videotest provides dummy camera driver for testing.
package videotest

import (
	"fmt"
	"sync"

	"github.com/pion/opencamera/pkg/driver"
	"github.com/pion/opencamera/pkg/driver/availability"
)

// Register registers one dummy camera per facing to m, in the given order.
// Labels are "VideoTest0", "VideoTest1" and so on.
func Register(m *driver.Manager, facings ...driver.Facing) error {
	for i, f := range facings {
		label := fmt.Sprintf("VideoTest%d", i)
		err := m.Register(New(), driver.Info{
			Label:      label,
			Name:       "VideoTest " + f.String(),
			DeviceType: driver.Camera,
			Facing:     f,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Dummy is a camera adapter that only tracks whether it's held. Only one
// Dummy can be open at a time per instance, like a real device node.
type Dummy struct {
	mu     sync.Mutex
	opened bool
	opens  int
}

// New creates a closed Dummy.
func New() *Dummy {
	return &Dummy{}
}

func (d *Dummy) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.opened {
		return availability.ErrBusy
	}
	d.opened = true
	d.opens++
	return nil
}

func (d *Dummy) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.opened = false
	return nil
}

// Opened reports whether the dummy device is currently held.
func (d *Dummy) Opened() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened
}

// Opens returns the number of successful opens.
func (d *Dummy) Opens() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}
