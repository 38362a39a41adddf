// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds Device and associated Queue info.
type Device struct {
	// logical device
	Device *wgpu.Device

	// queue for device
	Queue *wgpu.Queue
}

// NewDevice returns a new device for given GPU, with default
// limits and no optional features.
// It gets the Queue for this device.
func NewDevice(gp *GPU) (*Device, error) {
	if gp.Adapter == nil {
		return nil, setupError("request device", ErrNoAdapter)
	}
	wdev, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "lyra device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, setupError("request device", fmt.Errorf("%w: %w", ErrNoDevice, err))
	}
	dv := &Device{Device: wdev}
	dv.Queue = wdev.GetQueue()
	return dv, nil
}

// WaitDone waits until device is done with current processing steps.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

func (dv *Device) Release() {
	if dv.Queue != nil {
		dv.Queue.Release()
		dv.Queue = nil
	}
	if dv.Device != nil {
		dv.Device.Release()
		dv.Device = nil
	}
}
