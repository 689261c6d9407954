// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	vk "github.com/goki/vulkan"
)

// PipelineLayout is a de-duplicated layout object owned by an external
// PipelineLayoutCache.  The copy cache borrows these and never releases
// them; the layout cache must outlive the copy cache.
type PipelineLayout struct {
	Layout     vk.PipelineLayout      `desc:"vulkan pipeline layout"`
	DescLayout vk.DescriptorSetLayout `desc:"descriptor set layout the pipeline layout was built from"`
}

// LayoutBinding describes one descriptor binding in the binding shape of
// a copy pipeline.
type LayoutBinding struct {
	Binding uint32              `desc:"binding slot"`
	Type    vk.DescriptorType   `desc:"descriptor type"`
	Stages  vk.ShaderStageFlags `desc:"stages accessing the binding"`
}

// PipelineLayoutCache resolves a binding shape and push constant byte size
// to a borrowed, de-duplicated layout object.
type PipelineLayoutCache interface {
	// PipelineLayout returns the layout for given push constant size and
	// bindings.  The returned object outlives the caller.
	PipelineLayout(pushConstBytes int, bindings []LayoutBinding) *PipelineLayout
}

// imageCopyBindings is the binding shape for image to image copies: the
// source view in slot 0, plus the stencil-only source view in slot 1 when
// the destination carries both depth and stencil.
func imageCopyBindings(aspects vk.ImageAspectFlags) []LayoutBinding {
	bindings := []LayoutBinding{
		{Binding: 0, Type: vk.DescriptorTypeSampledImage, Stages: vk.ShaderStageFlags(vk.ShaderStageFragmentBit)},
	}
	ds := vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)
	if aspects&ds == ds {
		bindings = append(bindings, LayoutBinding{
			Binding: 1, Type: vk.DescriptorTypeSampledImage, Stages: vk.ShaderStageFlags(vk.ShaderStageFragmentBit),
		})
	}
	return bindings
}

// bufferToImageBindings is the binding shape for buffer to image copies:
// the linear source buffer view read by the fragment stage.
func bufferToImageBindings() []LayoutBinding {
	return []LayoutBinding{
		{Binding: 0, Type: vk.DescriptorTypeUniformTexelBuffer, Stages: vk.ShaderStageFlags(vk.ShaderStageFragmentBit)},
	}
}

// imageToBufferBindings is the binding shape for image to buffer copies:
// the destination buffer view, the source image, and the stencil-only
// source view for depth-stencil sources.
func imageToBufferBindings() []LayoutBinding {
	return []LayoutBinding{
		{Binding: 0, Type: vk.DescriptorTypeStorageTexelBuffer, Stages: vk.ShaderStageFlags(vk.ShaderStageComputeBit)},
		{Binding: 1, Type: vk.DescriptorTypeSampledImage, Stages: vk.ShaderStageFlags(vk.ShaderStageComputeBit)},
		{Binding: 2, Type: vk.DescriptorTypeSampledImage, Stages: vk.ShaderStageFlags(vk.ShaderStageComputeBit)},
	}
}

// formattedBufferBindings is the binding shape for formatted buffer to
// buffer copies: destination and source texel buffer views.
func formattedBufferBindings() []LayoutBinding {
	return []LayoutBinding{
		{Binding: 0, Type: vk.DescriptorTypeStorageTexelBuffer, Stages: vk.ShaderStageFlags(vk.ShaderStageComputeBit)},
		{Binding: 1, Type: vk.DescriptorTypeStorageTexelBuffer, Stages: vk.ShaderStageFlags(vk.ShaderStageComputeBit)},
	}
}
