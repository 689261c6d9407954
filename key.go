// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	vk "github.com/goki/vulkan"
)

// ImagePipelineKey identifies one image to image copy pipeline variant.
// Keys are plain comparable values: two lookups with field-wise equal keys
// address the same cache slot.
type ImagePipelineKey struct {
	ViewType vk.ImageViewType       `desc:"destination image view type"`
	Format   vk.Format              `desc:"destination view format"`
	Samples  vk.SampleCountFlagBits `desc:"destination sample count"`
}

// BufferImagePipelineKey identifies one buffer to image or image to buffer
// copy pipeline variant.  Image to buffer entries only use ViewType and
// BufferFormat, leaving the other fields zero.
type BufferImagePipelineKey struct {
	ViewType     vk.ImageViewType    `desc:"image view type"`
	ImageFormat  vk.Format           `desc:"image side view format"`
	BufferFormat vk.Format           `desc:"buffer side view format"`
	Aspects      vk.ImageAspectFlags `desc:"image aspects written or read"`
}
