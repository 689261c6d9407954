// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	"log"
	"sync"
	"unsafe"

	vk "github.com/goki/vulkan"
	"goki.dev/ordmap"
)

// Pipeline is the result of a cache lookup: the layout reference is
// borrowed from the external layout cache and carries no release
// responsibility; the pipeline handle remains owned by the Cache.
type Pipeline struct {
	Layout   *PipelineLayout `desc:"borrowed layout the pipeline was built against"`
	Pipeline vk.Pipeline     `desc:"pipeline handle, owned by the Cache"`
}

// Caps are the device capability flags consulted for shader variant
// selection, supplied at cache construction.
type Caps struct {
	DepthStencilExport bool `desc:"fragment shaders can export stencil values"`
	SampleRateShading  bool `desc:"per-sample fragment shading is available for multisampled destinations"`
}

// cacheEntry pairs a stored pipeline with the render pass it owns, if any.
// Compute entries have no pass.
type cacheEntry struct {
	Pipeline Pipeline
	Pass     vk.RenderPass
}

// Cache builds and memoizes copy pipelines, one table per operation kind.
// All tables share one exclusive lock, held across pipeline creation so
// that exactly one build happens per configuration.  Entries live until
// Destroy; there is no eviction, growth is bounded by the finite set of
// format / view type / sample count combinations actually used.
type Cache struct {
	Dev     vk.Device           `desc:"logical device all objects are created on"`
	Shaders ShaderProvider      `desc:"external provider of the copy shader set"`
	Layouts PipelineLayoutCache `desc:"external layout cache; must outlive this cache"`
	Caps    Caps                `desc:"device capabilities for variant selection"`
	Debug   bool                `desc:"log pipeline builds"`

	VkCache vk.PipelineCache `desc:"vulkan pipeline cache shared by all creation calls"`

	mu              sync.Mutex
	imagePipelines  ordmap.Map[ImagePipelineKey, *cacheEntry]
	bufferToImage   ordmap.Map[BufferImagePipelineKey, *cacheEntry]
	imageToBuffer   ordmap.Map[BufferImagePipelineKey, *cacheEntry]
	formattedBuffer *cacheEntry
}

// Init sets the collaborators and creates the shared vulkan pipeline
// cache.  Must be called once before any lookup.
func (cc *Cache) Init(dev vk.Device, shaders ShaderProvider, layouts PipelineLayoutCache, caps Caps) {
	cc.Dev = dev
	cc.Shaders = shaders
	cc.Layouts = layouts
	cc.Caps = caps
	cc.VkCache = createPipelineCache(dev)
}

// Destroy releases every owned pipeline and render pass and the shared
// vulkan pipeline cache.  Borrowed layouts are left untouched.
func (cc *Cache) Destroy() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	for _, kv := range cc.imagePipelines.Order {
		cc.destroyEntry(kv.Val)
	}
	for _, kv := range cc.bufferToImage.Order {
		cc.destroyEntry(kv.Val)
	}
	for _, kv := range cc.imageToBuffer.Order {
		cc.destroyEntry(kv.Val)
	}
	cc.imagePipelines.Reset()
	cc.bufferToImage.Reset()
	cc.imageToBuffer.Reset()
	if cc.formattedBuffer != nil {
		cc.destroyEntry(cc.formattedBuffer)
		cc.formattedBuffer = nil
	}
	if cc.VkCache != nil {
		destroyPipelineCache(cc.Dev, cc.VkCache)
		cc.VkCache = nil
	}
}

func (cc *Cache) destroyEntry(ent *cacheEntry) {
	destroyPipeline(cc.Dev, ent.Pipeline.Pipeline)
	if ent.Pass != nil {
		destroyRenderPass(cc.Dev, ent.Pass)
	}
}

// CopyImagePipeline returns the graphics pipeline for framebuffer-style
// image to image copies with given destination view type, view format and
// sample count, building and caching it on first use.
func (cc *Cache) CopyImagePipeline(viewType vk.ImageViewType, dstFormat vk.Format, dstSamples vk.SampleCountFlagBits) Pipeline {
	key := ImagePipelineKey{ViewType: viewType, Format: dstFormat, Samples: dstSamples}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if ent, has := cc.imagePipelines.ValByKeyTry(key); has {
		return ent.Pipeline
	}
	variant := cc.copyImageVariant(key.Samples)
	aspects := FormatAspects(key.Format)
	layout := cc.Layouts.PipelineLayout(int(unsafe.Sizeof(ImageCopyArgs{})), imageCopyBindings(aspects))
	ent := cc.buildGraphicsPipeline(key.Format, key.Samples, aspects, variant, layout)
	cc.imagePipelines.Add(key, ent)
	if cc.Debug {
		log.Printf("vcopy.Cache: built image copy pipeline %v\n", key)
	}
	return ent.Pipeline
}

// CopyBufferToImagePipeline returns the graphics pipeline reading a linear
// buffer view and writing the given image aspects.  Combined depth and
// stencil output requires Caps.DepthStencilExport; the cache does not
// degrade to two single-aspect builds.
func (cc *Cache) CopyBufferToImagePipeline(dstFormat, srcFormat vk.Format, aspects vk.ImageAspectFlags) Pipeline {
	// the destination is always rendered through a 2D array view
	key := BufferImagePipelineKey{
		ViewType:     vk.ImageViewType2dArray,
		ImageFormat:  dstFormat,
		BufferFormat: srcFormat,
		Aspects:      aspects,
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if ent, has := cc.bufferToImage.ValByKeyTry(key); has {
		return ent.Pipeline
	}
	variant := cc.bufferToImageVariant(aspects)
	layout := cc.Layouts.PipelineLayout(int(unsafe.Sizeof(BufferImageCopyArgs{})), bufferToImageBindings())
	ent := cc.buildGraphicsPipeline(dstFormat, vk.SampleCount1Bit, aspects, variant, layout)
	cc.bufferToImage.Add(key, ent)
	if cc.Debug {
		log.Printf("vcopy.Cache: built buffer to image pipeline %v\n", key)
	}
	return ent.Pipeline
}

// CopyImageToBufferPipeline returns the compute pipeline reading an image
// through a view of given type and writing a buffer view of given format.
func (cc *Cache) CopyImageToBufferPipeline(viewType vk.ImageViewType, dstFormat vk.Format) Pipeline {
	key := BufferImagePipelineKey{ViewType: viewType, BufferFormat: dstFormat}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if ent, has := cc.imageToBuffer.ValByKeyTry(key); has {
		return ent.Pipeline
	}
	layout := cc.Layouts.PipelineLayout(int(unsafe.Sizeof(BufferImageCopyArgs{})), imageToBufferBindings())
	ent := cc.buildComputePipeline(ImageToBuffer, layout)
	cc.imageToBuffer.Add(key, ent)
	if cc.Debug {
		log.Printf("vcopy.Cache: built image to buffer pipeline %v\n", key)
	}
	return ent.Pipeline
}

// CopyFormattedBufferPipeline returns the single compute pipeline for
// strided buffer to buffer copies with per-element format
// reinterpretation, building it on first call.
func (cc *Cache) CopyFormattedBufferPipeline() Pipeline {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.formattedBuffer != nil {
		return cc.formattedBuffer.Pipeline
	}
	layout := cc.Layouts.PipelineLayout(int(unsafe.Sizeof(FormattedBufferCopyArgs{})), formattedBufferBindings())
	cc.formattedBuffer = cc.buildComputePipeline(FormattedBuffer, layout)
	if cc.Debug {
		log.Printf("vcopy.Cache: built formatted buffer pipeline\n")
	}
	return cc.formattedBuffer.Pipeline
}

// buildGraphicsPipeline issues one graphics pipeline creation for a copy
// rendering into an attachment of given format and sample count, with the
// fullscreen vertex stage and given fragment variant.  Must be called with
// the lock held.
func (cc *Cache) buildGraphicsPipeline(format vk.Format, samples vk.SampleCountFlagBits, aspects vk.ImageAspectFlags, frag ShaderVariant, layout *PipelineLayout) *cacheEntry {
	pass := createRenderPass(cc.Dev, copyRenderPassConfig(format, samples, aspects))

	stages := []vk.PipelineShaderStageCreateInfo{{
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vk.ShaderStageVertexBit,
		Module: cc.shaderModule(CopyVertex),
		PName:  "main\x00",
	}, {
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vk.ShaderStageFragmentBit,
		Module: cc.shaderModule(frag),
		PName:  "main\x00",
	}}

	multi := vk.False
	if samples != vk.SampleCount1Bit {
		multi = vk.True
	}

	cfg := vk.GraphicsPipelineCreateInfo{
		SType:      vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount: uint32(len(stages)),
		PStages:    stages,
		PVertexInputState: &vk.PipelineVertexInputStateCreateInfo{
			SType: vk.StructureTypePipelineVertexInputStateCreateInfo,
		},
		PInputAssemblyState: &vk.PipelineInputAssemblyStateCreateInfo{
			SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
			Topology: vk.PrimitiveTopologyTriangleList,
		},
		PViewportState: &vk.PipelineViewportStateCreateInfo{
			SType:         vk.StructureTypePipelineViewportStateCreateInfo,
			ViewportCount: 1,
			ScissorCount:  1,
		},
		PRasterizationState: &vk.PipelineRasterizationStateCreateInfo{
			SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
			PolygonMode: vk.PolygonModeFill,
			CullMode:    vk.CullModeFlags(vk.CullModeNone),
			FrontFace:   vk.FrontFaceCounterClockwise,
			LineWidth:   1.0,
		},
		PMultisampleState: &vk.PipelineMultisampleStateCreateInfo{
			SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
			RasterizationSamples: samples,
			SampleShadingEnable:  vk.Bool32(multi),
			MinSampleShading:     1.0,
		},
		PDynamicState: &vk.PipelineDynamicStateCreateInfo{
			SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
			DynamicStateCount: 2,
			PDynamicStates: []vk.DynamicState{
				vk.DynamicStateViewport,
				vk.DynamicStateScissor,
			},
		},
		Layout:     layout.Layout,
		RenderPass: pass,
	}

	depth := aspects&vk.ImageAspectFlags(vk.ImageAspectDepthBit) != 0
	stencil := aspects&vk.ImageAspectFlags(vk.ImageAspectStencilBit) != 0
	if depth || stencil {
		stencilOp := vk.StencilOpState{
			FailOp:      vk.StencilOpReplace,
			PassOp:      vk.StencilOpReplace,
			DepthFailOp: vk.StencilOpReplace,
			CompareOp:   vk.CompareOpAlways,
			CompareMask: 0xff,
			WriteMask:   0xff,
		}
		dsCfg := &vk.PipelineDepthStencilStateCreateInfo{
			SType:          vk.StructureTypePipelineDepthStencilStateCreateInfo,
			DepthCompareOp: vk.CompareOpAlways,
			Front:          stencilOp,
			Back:           stencilOp,
		}
		if depth {
			dsCfg.DepthTestEnable = vk.True
			dsCfg.DepthWriteEnable = vk.True
		}
		if stencil {
			dsCfg.StencilTestEnable = vk.True
		}
		cfg.PDepthStencilState = dsCfg
	} else {
		cfg.PColorBlendState = &vk.PipelineColorBlendStateCreateInfo{
			SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
			AttachmentCount: 1,
			PAttachments: []vk.PipelineColorBlendAttachmentState{{
				ColorWriteMask: 0xF,
			}},
		}
	}

	pl := createGraphicsPipeline(cc.Dev, cc.VkCache, &cfg)
	return &cacheEntry{Pipeline: Pipeline{Layout: layout, Pipeline: pl}, Pass: pass}
}

// buildComputePipeline issues one compute pipeline creation for given
// dispatch shader variant.  Must be called with the lock held.
func (cc *Cache) buildComputePipeline(variant ShaderVariant, layout *PipelineLayout) *cacheEntry {
	cfg := vk.ComputePipelineCreateInfo{
		SType: vk.StructureTypeComputePipelineCreateInfo,
		Stage: vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageComputeBit,
			Module: cc.shaderModule(variant),
			PName:  "main\x00",
		},
		Layout: layout.Layout,
	}
	pl := createComputePipeline(cc.Dev, cc.VkCache, &cfg)
	return &cacheEntry{Pipeline: Pipeline{Layout: layout, Pipeline: pl}}
}

// copyRenderPassConfig describes the minimal single-attachment pass a copy
// pipeline renders through: the destination is loaded, written by the copy
// shader, and stored, staying in the general layout throughout.
func copyRenderPassConfig(format vk.Format, samples vk.SampleCountFlagBits, aspects vk.ImageAspectFlags) *vk.RenderPassCreateInfo {
	att := vk.AttachmentDescription{
		Format:         format,
		Samples:        samples,
		LoadOp:         vk.AttachmentLoadOpLoad,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpLoad,
		StencilStoreOp: vk.AttachmentStoreOpStore,
		InitialLayout:  vk.ImageLayoutGeneral,
		FinalLayout:    vk.ImageLayoutGeneral,
	}
	ref := vk.AttachmentReference{
		Attachment: 0,
		Layout:     vk.ImageLayoutGeneral,
	}
	subpass := vk.SubpassDescription{
		PipelineBindPoint: vk.PipelineBindPointGraphics,
	}
	ds := vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)
	if aspects&ds != 0 {
		subpass.PDepthStencilAttachment = &ref
	} else {
		subpass.ColorAttachmentCount = 1
		subpass.PColorAttachments = []vk.AttachmentReference{ref}
	}
	return &vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: 1,
		PAttachments:    []vk.AttachmentDescription{att},
		SubpassCount:    1,
		PSubpasses:      []vk.SubpassDescription{subpass},
	}
}
