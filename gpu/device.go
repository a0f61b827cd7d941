// Package gpu uploads glyph atlas tiles to GPU textures and compiles
// the SDF text shader.
//
// The host application owns the GPU device and passes it in through a
// DeviceHandle; this package never creates a device of its own. When
// no device is available, textures operate in a logical mode that
// tracks tile generations without issuing GPU commands, so the cache
// integration can be exercised headless.
package gpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g., a gogpu.App) implements gpucontext.DeviceProvider
// and passes it in, so the atlas shares the application's device and
// queue instead of creating its own.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no device behind it.
// Used for CPU-only operation where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns zero adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}
