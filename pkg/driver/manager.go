package driver

import (
	"fmt"
	"sync"
)

// FilterFn is being used to decide if a driver should be included in the
// query result.
type FilterFn func(Driver) bool

// FilterDeviceType returns a filter function to find a driver of the device type.
func FilterDeviceType(t DeviceType) FilterFn {
	return func(d Driver) bool {
		return d.Info().DeviceType == t
	}
}

// FilterVideoInput is a filter to be used to find camera drivers.
func FilterVideoInput() FilterFn {
	return FilterDeviceType(Camera)
}

// FilterFacing returns a filter function to find a driver facing to f.
func FilterFacing(f Facing) FilterFn {
	return func(d Driver) bool {
		return d.Info().Facing == f
	}
}

// FilterID returns a filter function to find a driver with the id.
func FilterID(id string) FilterFn {
	return func(d Driver) bool {
		return d.ID() == id
	}
}

// FilterAnd returns a filter function to take logical conjunction of given filters.
func FilterAnd(filters ...FilterFn) FilterFn {
	return func(d Driver) bool {
		for _, f := range filters {
			if !f(d) {
				return false
			}
		}
		return true
	}
}

// FilterNot returns a filter function to take logical inverse of the given filter.
func FilterNot(filter FilterFn) FilterFn {
	return func(d Driver) bool {
		return !filter(d)
	}
}

// Manager keeps track of registered drivers. Drivers are kept in
// registration order so that indices derived from a query are stable.
type Manager struct {
	mu      sync.RWMutex
	drivers []Driver
}

var manager = NewManager()

// GetManager gets manager singleton instance.
func GetManager() *Manager {
	return manager
}

// NewManager creates an empty Manager. Most callers want GetManager.
func NewManager() *Manager {
	return &Manager{}
}

// Register wraps the adapter and adds it to the manager.
func (m *Manager) Register(a Adapter, info Info) error {
	if a == nil {
		return fmt.Errorf("adapter can't be nil")
	}

	d := wrapAdapter(a, info)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers = append(m.drivers, d)
	return nil
}

// Query queries by using f to filter drivers, and simply return the filtered results.
func (m *Manager) Query(filters ...FilterFn) []Driver {
	filter := FilterAnd(filters...)

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Driver, 0)
	for _, d := range m.drivers {
		if filter(d) {
			results = append(results, d)
		}
	}

	return results
}

// Delete deletes the driver with the id. It reports whether a driver was removed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.drivers {
		if d.ID() == id {
			m.drivers = append(m.drivers[:i], m.drivers[i+1:]...)
			return true
		}
	}
	return false
}
