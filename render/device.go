// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host creates the device and the primary swapchain before any viewport
// is assembled; this package only reads from it.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// DefaultSurfaceFormat is used when the device does not report one.
const DefaultSurfaceFormat = gputypes.TextureFormatBGRA8Unorm

// SurfaceFormat returns the device's swapchain format, or
// DefaultSurfaceFormat for a nil device or an undefined format.
func SurfaceFormat(d DeviceHandle) gputypes.TextureFormat {
	if d == nil {
		return DefaultSurfaceFormat
	}
	if f := d.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		return f
	}
	return DefaultSurfaceFormat
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for headless execution where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo describes the null device as a software adapter.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "null", Type: gpucontext.AdapterTypeSoftware}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
