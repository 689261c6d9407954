// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	"testing"

	vk "github.com/goki/vulkan"
)

func TestCopyImageFormatsDepth(t *testing.T) {
	depth := vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	cf := CopyImageFormats(vk.FormatD32Sfloat, depth, vk.FormatD32Sfloat, depth)
	if cf.DstFormat != vk.FormatR32Sfloat || cf.SrcFormat != vk.FormatR32Sfloat {
		t.Errorf("D32Sfloat depth pair resolved to %v / %v, want R32Sfloat both", cf.DstFormat, cf.SrcFormat)
	}
	if FormatBitWidth(cf.DstFormat) != FormatBitWidth(vk.FormatD32Sfloat) {
		t.Errorf("resolved format bit width %d differs from source %d",
			FormatBitWidth(cf.DstFormat), FormatBitWidth(vk.FormatD32Sfloat))
	}

	cf = CopyImageFormats(vk.FormatD16Unorm, depth, vk.FormatD16Unorm, depth)
	if cf.DstFormat != vk.FormatR16Unorm {
		t.Errorf("D16Unorm resolved to %v, want R16Unorm", cf.DstFormat)
	}
	if FormatBitWidth(cf.DstFormat) != 16 {
		t.Errorf("16 bit depth resolved to %d bit color format", FormatBitWidth(cf.DstFormat))
	}

	// 24 bit depth lives in a 32 bit texel
	cf = CopyImageFormats(vk.FormatD24UnormS8Uint, depth, vk.FormatD24UnormS8Uint, depth)
	if cf.DstFormat != vk.FormatR32Uint {
		t.Errorf("D24UnormS8Uint depth resolved to %v, want R32Uint", cf.DstFormat)
	}
}

func TestCopyImageFormatsStencil(t *testing.T) {
	stencil := vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	cf := CopyImageFormats(vk.FormatS8Uint, stencil, vk.FormatD24UnormS8Uint, stencil)
	if cf.DstFormat != vk.FormatR8Uint || cf.SrcFormat != vk.FormatR8Uint {
		t.Errorf("stencil aspects resolved to %v / %v, want R8Uint both", cf.DstFormat, cf.SrcFormat)
	}
}

func TestCopyImageFormatsColorPassThrough(t *testing.T) {
	color := vk.ImageAspectFlags(vk.ImageAspectColorBit)
	cf := CopyImageFormats(vk.FormatR8g8b8a8Unorm, color, vk.FormatB8g8r8a8Unorm, color)
	if cf.DstFormat != vk.FormatR8g8b8a8Unorm || cf.SrcFormat != vk.FormatB8g8r8a8Unorm {
		t.Errorf("color aspects must pass through unchanged, got %v / %v", cf.DstFormat, cf.SrcFormat)
	}
}

func TestCopyImageFormatsCrossAspect(t *testing.T) {
	color := vk.ImageAspectFlags(vk.ImageAspectColorBit)
	depth := vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	cf := CopyImageFormats(vk.FormatR32Sfloat, color, vk.FormatD32Sfloat, depth)
	if cf.DstFormat != vk.FormatR32Sfloat {
		t.Errorf("color destination changed to %v", cf.DstFormat)
	}
	if cf.SrcFormat != vk.FormatR32Sfloat {
		t.Errorf("depth source resolved to %v, want R32Sfloat", cf.SrcFormat)
	}
}

func TestCopyImageFormatsPureAndTotal(t *testing.T) {
	depth := vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	a := CopyImageFormats(vk.FormatD32Sfloat, depth, vk.FormatD16Unorm, depth)
	b := CopyImageFormats(vk.FormatD32Sfloat, depth, vk.FormatD16Unorm, depth)
	if a != b {
		t.Errorf("identical inputs yielded different outputs: %v vs %v", a, b)
	}

	// formats outside the tables pass through rather than failing
	color := vk.ImageAspectFlags(vk.ImageAspectColorBit)
	c := CopyImageFormats(vk.FormatBc1RgbUnormBlock, color, vk.FormatBc1RgbUnormBlock, color)
	if c.DstFormat != vk.FormatBc1RgbUnormBlock {
		t.Errorf("unknown format did not pass through")
	}
}

func TestFormatAspects(t *testing.T) {
	tests := []struct {
		format vk.Format
		want   vk.ImageAspectFlags
	}{
		{vk.FormatR8g8b8a8Unorm, vk.ImageAspectFlags(vk.ImageAspectColorBit)},
		{vk.FormatD32Sfloat, vk.ImageAspectFlags(vk.ImageAspectDepthBit)},
		{vk.FormatS8Uint, vk.ImageAspectFlags(vk.ImageAspectStencilBit)},
		{vk.FormatD24UnormS8Uint, vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)},
		{vk.FormatD32SfloatS8Uint, vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)},
	}
	for _, tt := range tests {
		if got := FormatAspects(tt.format); got != tt.want {
			t.Errorf("FormatAspects(%v) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestDepthCopyFormatChannels(t *testing.T) {
	for df, cf := range DepthCopyFormats {
		if FormatChannels[cf] != 1 {
			t.Errorf("depth copy format %v for %v is not single channel", cf, df)
		}
		if FormatAspects(cf) != vk.ImageAspectFlags(vk.ImageAspectColorBit) {
			t.Errorf("depth copy format %v for %v is not a color format", cf, df)
		}
	}
}
