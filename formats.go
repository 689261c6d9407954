// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	vk "github.com/goki/vulkan"
)

// CopyFormats is the pair of view formats resolved for one copy operation.
// These are the formats the destination and source views must use so that
// the copy can execute as a shader read / write.
type CopyFormats struct {
	DstFormat vk.Format `desc:"resolved destination view format"`
	SrcFormat vk.Format `desc:"resolved source view format"`
}

// CopyImageFormats resolves the pair of view formats to use for a copy
// between images with the given formats and aspect masks.  A depth or
// stencil aspect is substituted with an uncompressed color format of equal
// bit width and channel count, so the copy runs as a regular shader read /
// write rather than a native depth copy.  Color aspects pass through
// unchanged, as does a combined depth+stencil aspect, which keeps the
// native format for the paired depth-stencil shader variants.
// The mapping is total: formats without a table entry pass through.
func CopyImageFormats(dstFormat vk.Format, dstAspect vk.ImageAspectFlags, srcFormat vk.Format, srcAspect vk.ImageAspectFlags) CopyFormats {
	return CopyFormats{
		DstFormat: copyViewFormat(dstFormat, dstAspect),
		SrcFormat: copyViewFormat(srcFormat, srcAspect),
	}
}

// copyViewFormat resolves the view format for one side of a copy.
func copyViewFormat(format vk.Format, aspect vk.ImageAspectFlags) vk.Format {
	depth := aspect&vk.ImageAspectFlags(vk.ImageAspectDepthBit) != 0
	stencil := aspect&vk.ImageAspectFlags(vk.ImageAspectStencilBit) != 0
	switch {
	case depth && stencil:
		return format
	case depth:
		if cf, has := DepthCopyFormats[format]; has {
			return cf
		}
	case stencil:
		if cf, has := StencilCopyFormats[format]; has {
			return cf
		}
	}
	return format
}

// DepthCopyFormats maps the depth plane of each depth format to the color
// format of equal bit width used to read or write it in a copy shader.
// 24 bit depth occupies a 32 bit texel, so it maps to a 32 bit channel.
var DepthCopyFormats = map[vk.Format]vk.Format{
	vk.FormatD16Unorm:         vk.FormatR16Unorm,
	vk.FormatX8D24UnormPack32: vk.FormatR32Uint,
	vk.FormatD32Sfloat:        vk.FormatR32Sfloat,
	vk.FormatD16UnormS8Uint:   vk.FormatR16Unorm,
	vk.FormatD24UnormS8Uint:   vk.FormatR32Uint,
	vk.FormatD32SfloatS8Uint:  vk.FormatR32Sfloat,
}

// StencilCopyFormats maps the stencil plane of each stencil format to its
// copy shader color format.
var StencilCopyFormats = map[vk.Format]vk.Format{
	vk.FormatS8Uint:          vk.FormatR8Uint,
	vk.FormatD16UnormS8Uint:  vk.FormatR8Uint,
	vk.FormatD24UnormS8Uint:  vk.FormatR8Uint,
	vk.FormatD32SfloatS8Uint: vk.FormatR8Uint,
}

// FormatAspects returns the full aspect mask implied by given format.
func FormatAspects(format vk.Format) vk.ImageAspectFlags {
	switch format {
	case vk.FormatD16Unorm, vk.FormatX8D24UnormPack32, vk.FormatD32Sfloat:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case vk.FormatS8Uint:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	case vk.FormatD16UnormS8Uint, vk.FormatD24UnormS8Uint, vk.FormatD32SfloatS8Uint:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)
	}
	return vk.ImageAspectFlags(vk.ImageAspectColorBit)
}

// FormatTexelSizes gives the per-texel byte size of the formats handled by
// the copy pipelines.  Combined depth-stencil formats report the size of
// the depth plane texel as stored for shader access.
var FormatTexelSizes = map[vk.Format]int{
	vk.FormatR8Uint:             1,
	vk.FormatR8Unorm:            1,
	vk.FormatS8Uint:             1,
	vk.FormatR16Uint:            2,
	vk.FormatR16Unorm:           2,
	vk.FormatR16Sfloat:          2,
	vk.FormatD16Unorm:           2,
	vk.FormatD16UnormS8Uint:     2,
	vk.FormatR8g8b8a8Unorm:      4,
	vk.FormatR8g8b8a8Srgb:       4,
	vk.FormatB8g8r8a8Unorm:      4,
	vk.FormatR16g16Sfloat:       4,
	vk.FormatR32Uint:            4,
	vk.FormatR32Sint:            4,
	vk.FormatR32Sfloat:          4,
	vk.FormatD32Sfloat:          4,
	vk.FormatD32SfloatS8Uint:    4,
	vk.FormatX8D24UnormPack32:   4,
	vk.FormatD24UnormS8Uint:     4,
	vk.FormatR16g16b16a16Sfloat: 8,
	vk.FormatR32g32Sfloat:       8,
	vk.FormatR32g32Uint:         8,
	vk.FormatR32g32b32a32Sfloat: 16,
	vk.FormatR32g32b32a32Uint:   16,
}

// FormatChannels gives the channel count of the color formats handled by
// the copy pipelines; depth and stencil planes are single channel.
var FormatChannels = map[vk.Format]int{
	vk.FormatR8Uint:             1,
	vk.FormatR8Unorm:            1,
	vk.FormatS8Uint:             1,
	vk.FormatR16Uint:            1,
	vk.FormatR16Unorm:           1,
	vk.FormatR16Sfloat:          1,
	vk.FormatD16Unorm:           1,
	vk.FormatD16UnormS8Uint:     1,
	vk.FormatR32Uint:            1,
	vk.FormatR32Sint:            1,
	vk.FormatR32Sfloat:          1,
	vk.FormatD32Sfloat:          1,
	vk.FormatD32SfloatS8Uint:    1,
	vk.FormatX8D24UnormPack32:   1,
	vk.FormatD24UnormS8Uint:     1,
	vk.FormatR16g16Sfloat:       2,
	vk.FormatR32g32Sfloat:       2,
	vk.FormatR32g32Uint:         2,
	vk.FormatR8g8b8a8Unorm:      4,
	vk.FormatR8g8b8a8Srgb:       4,
	vk.FormatB8g8r8a8Unorm:      4,
	vk.FormatR16g16b16a16Sfloat: 4,
	vk.FormatR32g32b32a32Sfloat: 4,
	vk.FormatR32g32b32a32Uint:   4,
}

// FormatBitWidth returns the per-texel bit width for given format,
// 0 if unknown.
func FormatBitWidth(format vk.Format) int {
	return 8 * FormatTexelSizes[format]
}
