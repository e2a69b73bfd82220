//go:build windows

// Package webgpu implements the WebGPU statevector backend.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
//
// Amplitudes are staged on the GPU as interleaved float32 re/im pairs, so
// the GPU path trades precision for throughput; single-qubit (optionally
// controlled) gates run as WGSL compute passes, and everything else falls
// back to the CPU kernels.
package webgpu

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/varq-ml/varq/internal/backend/cpu"
)

// Backend applies gate matrices to amplitude slices on the GPU.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	// CPU kernels for multi-qubit gates the shader set does not cover.
	fallback *cpu.CPUBackend
}

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (backend *Backend, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Backend{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
		fallback:  cpu.New(),
	}, nil
}

// Name returns the backend name.
func (b *Backend) Name() string { return "WebGPU" }

// ApplyGate multiplies a gate matrix into amps on the given wires. The
// single-qubit case (with any number of controls) runs on the GPU; wider
// gates use the CPU fallback kernel.
func (b *Backend) ApplyGate(amps []complex128, mat []complex128, wires, ctrls []int) error {
	if len(wires) != 1 {
		return b.fallback.ApplyGate(amps, mat, wires, ctrls)
	}
	size := len(amps)
	if size == 0 || size&(size-1) != 0 {
		return fmt.Errorf("webgpu: amplitude count %d is not a power of two", size)
	}
	if len(mat) != 4 {
		return fmt.Errorf("webgpu: matrix size %d does not match 1 wire", len(mat))
	}

	ctrlMask := uint32(0)
	for _, c := range ctrls {
		ctrlMask |= 1 << c
	}

	// Stage amplitudes and gate as interleaved f32 re/im pairs.
	staged := make([]float32, 2*size)
	for i, a := range amps {
		staged[2*i] = float32(real(a))
		staged[2*i+1] = float32(imag(a))
	}
	gate := make([]float32, 8)
	for i, m := range mat {
		gate[2*i] = float32(real(m))
		gate[2*i+1] = float32(imag(m))
	}

	shader := b.compileShader("gate1q", gate1qShader)
	pipeline := b.getOrCreatePipeline("gate1q", shader)

	ampsBuf := b.createBuffer(f32Bytes(staged),
		wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer ampsBuf.Release()

	gateBuf := b.createBuffer(f32Bytes(gate), wgpu.BufferUsageStorage)
	defer gateBuf.Release()

	params := make([]byte, 16)
	putUint32(params[0:], uint32(size))
	putUint32(params[4:], uint32(wires[0]))
	putUint32(params[8:], ctrlMask)
	paramsBuf := b.createBuffer(params, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	defer paramsBuf.Release()

	ampsSize := uint64(len(staged) * 4)
	layout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(layout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, ampsBuf, 0, ampsSize),
		wgpu.BufferBindingEntry(1, gateBuf, 0, uint64(len(gate)*4)),
		wgpu.BufferBindingEntry(2, paramsBuf, 0, 16),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((size + workgroupSize - 1) / workgroupSize)
	pass.DispatchWorkgroups(workgroups, 1, 1)
	pass.End()
	b.queue.Submit(encoder.Finish(nil))

	result, err := b.readBuffer(ampsBuf, ampsSize)
	if err != nil {
		return err
	}
	out := f32FromBytes(result)
	for i := range amps {
		amps[i] = complex(float64(out[2*i]), float64(out[2*i+1]))
	}
	return nil
}

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached in the Backend's shaders map.
func (b *Backend) compileShader(name, code string) *wgpu.ShaderModule {
	b.mu.RLock()
	if shader, exists := b.shaders[name]; exists {
		b.mu.RUnlock()
		return shader
	}
	b.mu.RUnlock()

	shader := b.device.CreateShaderModuleWGSL(code)

	b.mu.Lock()
	b.shaders[name] = shader
	b.mu.Unlock()
	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (b *Backend) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[name]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	pipeline := b.device.CreateComputePipelineSimple(nil, shader, "main")

	b.mu.Lock()
	b.pipelines[name] = pipeline
	b.mu.Unlock()
	return pipeline
}

// createBuffer creates a GPU buffer and uploads initial data, padding to
// the 16-byte alignment uniform buffers require.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))
	alignedSize := (size + 15) &^ 15

	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()
	return buffer
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a staging buffer since storage buffers can't be mapped directly.
func (b *Backend) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := stagingBuffer.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	stagingBuffer.Unmap()
	return result, nil
}

func f32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

func f32FromBytes(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), len(data)/4)
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
