package pulse

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// StorageBuffer is a gpu storage buffer holding Len values of type T.
// The buffer is released once it is garbage collected, or earlier by calling Release.
type StorageBuffer[T any] struct {
	*wgpu.Buffer
	Len int
}

// CreateStorageBuffer uploads the values into a new storage buffer.
// An empty slice still allocates a buffer of one value, as empty
// bindings are not allowed.
func CreateStorageBuffer[T any](ctx *Context, label string, values []T) (StorageBuffer[T], error) {
	contents := wgpu.ToBytes(values)
	if len(values) == 0 {
		var zeroT T
		contents = asByteSlice(&zeroT)
	}

	buf, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
	})

	if err != nil {
		return StorageBuffer[T]{}, fmt.Errorf("create storage buffer %q: %w", label, err)
	}

	slog.Debug("Created storage buffer",
		slog.String("label", label),
		slog.Int("values", len(values)),
		slog.Int("bytes", len(contents)),
	)

	return StorageBuffer[T]{Buffer: buf, Len: len(values)}, nil
}

// CreateEmptyStorageBuffer allocates a storage buffer for count values of type T.
func CreateEmptyStorageBuffer[T any](ctx *Context, label string, count int) (StorageBuffer[T], error) {
	var zeroT T

	buf, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
		Size:  uint64(max(1, count)) * uint64(unsafe.Sizeof(zeroT)),
	})

	if err != nil {
		return StorageBuffer[T]{}, fmt.Errorf("create storage buffer %q: %w", label, err)
	}

	return StorageBuffer[T]{Buffer: buf, Len: count}, nil
}

// Read copies the values of the buffer back into main memory.
// It blocks until all previously submitted work is done.
func (b StorageBuffer[T]) Read(ctx *Context) ([]T, error) {
	if b.Len == 0 {
		return []T{}, nil
	}

	var zeroT T
	size := uint64(b.Len) * uint64(unsafe.Sizeof(zeroT))

	// copy sizes must be aligned
	alignedSize := (size + wgpu.CopyBufferAlignment - 1) &^ (wgpu.CopyBufferAlignment - 1)

	staging, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Staging",
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  alignedSize,
	})

	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}

	defer staging.Release()

	enc, err := ctx.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	if err := enc.CopyBufferToBuffer(b.Buffer, 0, staging, 0, alignedSize); err != nil {
		return nil, fmt.Errorf("copy to staging buffer: %w", err)
	}

	cmd, err := enc.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("finish command encoder: %w", err)
	}

	defer cmd.Release()

	ctx.Submit(cmd)

	var status wgpu.MapAsyncStatus
	err = staging.MapAsync(wgpu.MapModeRead, 0, alignedSize, func(s wgpu.MapAsyncStatus) {
		status = s
	})

	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}

	// wait for the copy and the mapping to finish
	ctx.Poll(true, nil)

	if status != wgpu.MapAsyncStatusSuccess {
		return nil, fmt.Errorf("map staging buffer: status %s", status)
	}

	mapped := staging.GetMappedRange(0, uint(size))
	values := make([]T, b.Len)
	copy(values, wgpu.FromBytes[T](mapped))

	if err := staging.Unmap(); err != nil {
		return nil, fmt.Errorf("unmap staging buffer: %w", err)
	}

	return values, nil
}

// Release frees the buffer now instead of waiting for the garbage collector.
func (b StorageBuffer[T]) Release() {
	if b.Buffer != nil {
		b.Buffer.Release()
	}
}

func asByteSlice[T any](value *T) []byte {
	n := unsafe.Sizeof(*value)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}
