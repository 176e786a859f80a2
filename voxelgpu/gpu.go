package voxelgpu

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/oliverbestmann/voxelmesh/pulse"
	"github.com/oliverbestmann/voxelmesh/voxel"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed expand.wgsl
var expandShaderSource string

const defaultWorkgroupSize = 64

// Buffers holds the meshing result on the gpu.
type Buffers struct {
	ChunkRefs pulse.StorageBuffer[GPUChunkRef]
	Surfaces  pulse.StorageBuffer[voxel.VoxelSurface]
	Palette   pulse.StorageBuffer[[4]float32]
}

// Upload copies the chunk refs, the surfaces and the palette into storage buffers.
func Upload(ctx *pulse.Context, chunks *voxel.Chunks, surfaces []voxel.VoxelSurface, palette []pulse.Color) (_ *Buffers, err error) {
	b := &Buffers{}

	defer func() {
		if err != nil {
			b.Release()
		}
	}()

	b.ChunkRefs, err = pulse.CreateStorageBuffer(ctx, "ChunkRefs", ChunkRefs(chunks))
	if err != nil {
		return nil, fmt.Errorf("upload chunk refs: %w", err)
	}

	b.Surfaces, err = pulse.CreateStorageBuffer(ctx, "Surfaces", surfaces)
	if err != nil {
		return nil, fmt.Errorf("upload surfaces: %w", err)
	}

	b.Palette, err = pulse.CreateStorageBuffer(ctx, "Palette", Palette(palette))
	if err != nil {
		return nil, fmt.Errorf("upload palette: %w", err)
	}

	return b, nil
}

func (b *Buffers) Release() {
	b.ChunkRefs.Release()
	b.Surfaces.Release()
	b.Palette.Release()
}

// Expander runs the compute pass that turns the packed surfaces into world space quads.
type Expander struct {
	// threads per workgroup, defaults to 64
	WorkgroupSize int

	pipelines *pulse.PipelineCache[expandPipeline]
}

func NewExpander(ctx *pulse.Context) *Expander {
	return &Expander{
		WorkgroupSize: defaultWorkgroupSize,
		pipelines:     pulse.NewPipelineCache[expandPipeline](ctx),
	}
}

type expandPipeline struct {
	WorkgroupSize int
}

func (conf expandPipeline) Specialize(dev *wgpu.Device) (*wgpu.ComputePipeline, error) {
	source := strings.ReplaceAll(expandShaderSource, "WORKGROUP_SIZE", strconv.Itoa(conf.WorkgroupSize))

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "ExpandShader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: source},
	})

	if err != nil {
		return nil, fmt.Errorf("compile expand shader: %w", err)
	}

	defer shader.Release()

	pipeline, err := dev.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: "Expand",
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     shader,
			EntryPoint: "expand",
		},
	})

	if err != nil {
		return nil, fmt.Errorf("create expand pipeline: %w", err)
	}

	slog.Debug("Compiled expand pipeline", slog.Int("workgroupSize", conf.WorkgroupSize))

	return pipeline, nil
}

// Expand submits the expand pass. The returned buffer holds one Quad per surface.
func (e *Expander) Expand(ctx *pulse.Context, buffers *Buffers) (pulse.StorageBuffer[Quad], error) {
	count := buffers.Surfaces.Len

	quads, err := pulse.CreateEmptyStorageBuffer[Quad](ctx, "Quads", count)
	if err != nil {
		return quads, err
	}

	if count == 0 {
		return quads, nil
	}

	if err := e.dispatch(ctx, buffers, quads); err != nil {
		quads.Release()
		return pulse.StorageBuffer[Quad]{}, err
	}

	return quads, nil
}

func (e *Expander) dispatch(ctx *pulse.Context, buffers *Buffers, quads pulse.StorageBuffer[Quad]) error {
	workgroupSize := e.WorkgroupSize
	if workgroupSize <= 0 {
		workgroupSize = defaultWorkgroupSize
	}

	pipeline, err := e.pipelines.Get(expandPipeline{WorkgroupSize: workgroupSize})
	if err != nil {
		return err
	}

	bindGroup, err := ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "ExpandBindGroup",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: buffers.ChunkRefs.Buffer, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: buffers.Surfaces.Buffer, Size: wgpu.WholeSize},
			{Binding: 2, Buffer: buffers.Palette.Buffer, Size: wgpu.WholeSize},
			{Binding: 3, Buffer: quads.Buffer, Size: wgpu.WholeSize},
		},
	})

	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	enc, err := ctx.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	workgroups := workgroupCount(quads.Len, workgroupSize)

	pass := enc.BeginComputePass(&wgpu.ComputePassDescriptor{Label: "ExpandPass"})
	pass.SetPipeline(pipeline.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.DispatchWorkgroups(workgroups, 1, 1)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end expand pass: %w", err)
	}

	cmd, err := enc.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer cmd.Release()

	ctx.Submit(cmd)

	slog.Debug("Submitted expand pass",
		slog.Int("surfaces", quads.Len),
		slog.Int("workgroups", int(workgroups)))

	return nil
}

func workgroupCount(count, workgroupSize int) uint32 {
	return uint32((count + workgroupSize - 1) / workgroupSize)
}
