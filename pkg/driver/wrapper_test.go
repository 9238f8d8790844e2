package driver

import (
	"fmt"
	"testing"
)

var (
	openErr = fmt.Errorf("failed to open device")
)

type adapterMock struct {
	opened, closed int
}

func (a *adapterMock) Open() error  { a.opened++; return nil }
func (a *adapterMock) Close() error { a.closed++; return nil }

type adapterBrokenMock struct{ adapterMock }

func (a *adapterBrokenMock) Open() error { return openErr }

func TestWrapperState(t *testing.T) {
	var a adapterMock
	d := wrapAdapter(&a, Info{Label: "mock", DeviceType: Camera, Facing: FacingBack})

	if d.Status() != StateClosed {
		t.Errorf("expected the status to be %v, but got %v", StateClosed, d.Status())
	}
	if d.Info().Facing != FacingBack {
		t.Errorf("expected facing %v, but got %v", FacingBack, d.Info().Facing)
	}
	if d.ID() == "" {
		t.Error("expected a non-empty id")
	}

	if err := d.Open(); err != nil {
		t.Errorf("expected to successfully open, but got %v", err)
	}
	if err := d.Open(); err == nil {
		t.Errorf("expected to get an invalid state")
	}
	if a.opened != 1 {
		t.Errorf("expected the adapter to be opened once, got %d", a.opened)
	}

	if err := d.Close(); err != nil {
		t.Errorf("expected to successfully close, but got %v", err)
	}
	if d.Status() != StateClosed {
		t.Errorf("expected the status to be %v, but got %v", StateClosed, d.Status())
	}
}

func TestWrapperWithBrokenAdapterState(t *testing.T) {
	var a adapterBrokenMock
	d := wrapAdapter(&a, Info{})

	err := d.Open()
	if err != openErr {
		t.Errorf("expected to get %v, but got %v", openErr, err)
	}

	if d.Status() != StateClosed {
		t.Errorf("expected the status to be %v, but got %v", StateClosed, d.Status())
	}
}

func TestWrapperUniqueID(t *testing.T) {
	a := wrapAdapter(&adapterMock{}, Info{})
	b := wrapAdapter(&adapterMock{}, Info{})
	if a.ID() == b.ID() {
		t.Errorf("expected unique ids, both are %s", a.ID())
	}
}
