//go:build !windows

// Package webgpu implements the WebGPU statevector backend. The native
// wgpu bindings are only wired up on windows; on other platforms New
// reports the backend as unavailable so callers can fall back to CPU.
package webgpu

import "errors"

// ErrUnavailable indicates the WebGPU backend is not built for this
// platform.
var ErrUnavailable = errors.New("webgpu: backend not available on this platform")

// Backend is the WebGPU backend stub for platforms without wgpu bindings.
type Backend struct{}

// New reports the backend as unavailable.
func New() (*Backend, error) { return nil, ErrUnavailable }

// Name returns the backend name.
func (b *Backend) Name() string { return "WebGPU" }

// ApplyGate always fails: the stub holds no device.
func (b *Backend) ApplyGate([]complex128, []complex128, []int, []int) error {
	return ErrUnavailable
}
