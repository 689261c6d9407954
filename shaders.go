// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	"fmt"

	vk "github.com/goki/vulkan"
	"github.com/goki/ki/kit"
)

// ShaderVariant is the logical identity of one shader in the fixed copy
// shader set.  The set must cover every supported format and aspect
// combination; a missing variant is a configuration error, not a
// recoverable condition.
type ShaderVariant int32

const (
	VariantUndef ShaderVariant = iota

	// CopyVertex is the fullscreen triangle vertex stage shared by all
	// framebuffer-style copies.
	CopyVertex

	// ImageCopySingle is the fragment stage for single-sampled
	// image to image copies.
	ImageCopySingle

	// ImageCopyMulti is the fragment stage for multisampled
	// image to image copies.
	ImageCopyMulti

	// BufferToImageColor writes color aspects from a linear buffer view.
	BufferToImageColor

	// BufferToImageDepth writes the depth aspect from a linear buffer view.
	BufferToImageDepth

	// BufferToImageStencil writes the stencil aspect from a linear
	// buffer view, one bit plane per pass.
	BufferToImageStencil

	// BufferToImageDepthStencil writes both aspects in one invocation;
	// requires Caps.DepthStencilExport.
	BufferToImageDepthStencil

	// ImageToBuffer is the dispatch stage reading an image and writing
	// a linear buffer view.
	ImageToBuffer

	// FormattedBuffer is the dispatch stage for strided buffer to buffer
	// copies with per-element format reinterpretation.
	FormattedBuffer

	ShaderVariantN
)

//go:generate stringer -type=ShaderVariant

var KiT_ShaderVariant = kit.Enums.AddEnum(ShaderVariantN, kit.NotBitFlag, nil)

// ShaderProvider supplies ready shader modules for the copy shader set.
// Modules remain owned by the provider.
type ShaderProvider interface {
	// ShaderModule returns the module for given variant, nil if the
	// installed shader set does not include it.
	ShaderModule(v ShaderVariant) vk.ShaderModule
}

// copyImageVariant selects the fragment variant for an image to image copy
// based on the destination sample count.
func (cc *Cache) copyImageVariant(samples vk.SampleCountFlagBits) ShaderVariant {
	if samples == vk.SampleCount1Bit {
		return ImageCopySingle
	}
	if !cc.Caps.SampleRateShading {
		IfPanic(fmt.Errorf("vcopy.Cache: multisampled copy destination requires sample rate shading support"))
	}
	return ImageCopyMulti
}

// bufferToImageVariant selects the fragment variant for a buffer to image
// copy based on the destination aspects.  Writing depth and stencil in one
// invocation requires depth-stencil export support; the cache never splits
// the copy into two single-aspect builds.
func (cc *Cache) bufferToImageVariant(aspects vk.ImageAspectFlags) ShaderVariant {
	depth := aspects&vk.ImageAspectFlags(vk.ImageAspectDepthBit) != 0
	stencil := aspects&vk.ImageAspectFlags(vk.ImageAspectStencilBit) != 0
	switch {
	case depth && stencil:
		if !cc.Caps.DepthStencilExport {
			IfPanic(fmt.Errorf("vcopy.Cache: combined depth-stencil write requires depth-stencil export support"))
		}
		return BufferToImageDepthStencil
	case depth:
		return BufferToImageDepth
	case stencil:
		return BufferToImageStencil
	}
	return BufferToImageColor
}

// shaderModule fetches the module for given variant.  The shader set is
// fixed at build time, so an absent module is fatal.
func (cc *Cache) shaderModule(v ShaderVariant) vk.ShaderModule {
	sm := cc.Shaders.ShaderModule(v)
	if sm == nil {
		IfPanic(fmt.Errorf("vcopy.Cache: shader set has no module for variant %d", v))
	}
	return sm
}
