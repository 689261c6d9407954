// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	vk "github.com/goki/vulkan"
)

// The raw Vulkan entry points used by this package, held in function
// variables so tests can substitute recording stubs.  Creation failure is
// fatal here: the defaults panic through IfPanic, per the device error
// convention.
var (
	createPipelineCache = func(dev vk.Device) vk.PipelineCache {
		var pc vk.PipelineCache
		ret := vk.CreatePipelineCache(dev, &vk.PipelineCacheCreateInfo{
			SType: vk.StructureTypePipelineCacheCreateInfo,
		}, nil, &pc)
		IfPanic(NewError(ret))
		return pc
	}

	destroyPipelineCache = func(dev vk.Device, pc vk.PipelineCache) {
		vk.DestroyPipelineCache(dev, pc, nil)
	}

	createGraphicsPipeline = func(dev vk.Device, pc vk.PipelineCache, cfg *vk.GraphicsPipelineCreateInfo) vk.Pipeline {
		pipeline := make([]vk.Pipeline, 1)
		ret := vk.CreateGraphicsPipelines(dev, pc, 1, []vk.GraphicsPipelineCreateInfo{*cfg}, nil, pipeline)
		IfPanic(NewError(ret))
		return pipeline[0]
	}

	createComputePipeline = func(dev vk.Device, pc vk.PipelineCache, cfg *vk.ComputePipelineCreateInfo) vk.Pipeline {
		pipeline := make([]vk.Pipeline, 1)
		ret := vk.CreateComputePipelines(dev, pc, 1, []vk.ComputePipelineCreateInfo{*cfg}, nil, pipeline)
		IfPanic(NewError(ret))
		return pipeline[0]
	}

	destroyPipeline = func(dev vk.Device, pl vk.Pipeline) {
		vk.DestroyPipeline(dev, pl, nil)
	}

	createRenderPass = func(dev vk.Device, cfg *vk.RenderPassCreateInfo) vk.RenderPass {
		var pass vk.RenderPass
		ret := vk.CreateRenderPass(dev, cfg, nil, &pass)
		IfPanic(NewError(ret))
		return pass
	}

	destroyRenderPass = func(dev vk.Device, pass vk.RenderPass) {
		vk.DestroyRenderPass(dev, pass, nil)
	}

	createImageView = func(dev vk.Device, cfg *vk.ImageViewCreateInfo) vk.ImageView {
		var view vk.ImageView
		ret := vk.CreateImageView(dev, cfg, nil, &view)
		IfPanic(NewError(ret))
		return view
	}

	destroyImageView = func(dev vk.Device, view vk.ImageView) {
		vk.DestroyImageView(dev, view, nil)
	}
)
