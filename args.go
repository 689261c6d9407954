// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	"goki.dev/mat32/v2"
)

// Extent2D is an unsigned 2D extent, laid out as in the shader interface.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Extent3D is an unsigned 3D extent, laid out as in the shader interface.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// FormattedBufferCopyArgs is the push constant block for the formatted
// buffer copy shader.  The layout is bit-exact against the shader
// declaration; field order and padding must not change.
type FormattedBufferCopyArgs struct {
	DstOffset mat32.Vec3i `desc:"destination element offset"`
	_         uint32
	SrcOffset mat32.Vec3i `desc:"source element offset"`
	_         uint32
	Extent    Extent3D `desc:"copied region in elements"`
	_         uint32
	DstSize   Extent2D `desc:"destination row and slice pitch in elements"`
	SrcSize   Extent2D `desc:"source row and slice pitch in elements"`
}

// BufferImageCopyArgs is the push constant block shared by the buffer to
// image and image to buffer copy shaders.  Bit-exact against the shader
// declaration; field order must not change.
type BufferImageCopyArgs struct {
	ImageOffset       mat32.Vec3i `desc:"image texel offset"`
	BufferOffset      uint32      `desc:"buffer element offset"`
	ImageExtent       Extent3D    `desc:"copied region in texels"`
	BufferImageWidth  uint32      `desc:"buffer row pitch in texels"`
	BufferImageHeight uint32      `desc:"buffer slice pitch in rows"`
	StencilBitIndex   uint32      `desc:"bit plane written by single-bit stencil passes"`
}

// ImageCopyArgs is the push constant block for the image to image copy
// fragment stage.
type ImageCopyArgs struct {
	SrcOffset mat32.Vec2i `desc:"source texel offset relative to the destination"`
}
