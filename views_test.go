// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	"testing"

	vk "github.com/goki/vulkan"
)

// stubImageViews replaces image view creation with a recording stub.
func stubImageViews(t *testing.T) (infos *[]vk.ImageViewCreateInfo, destroyed *int) {
	t.Helper()
	infos = &[]vk.ImageViewCreateInfo{}
	destroyed = new(int)
	oldC, oldD := createImageView, destroyImageView
	n := uint64(0)
	createImageView = func(dev vk.Device, cfg *vk.ImageViewCreateInfo) vk.ImageView {
		*infos = append(*infos, *cfg)
		n++
		return vk.ImageView(testHandle(0x500 + n))
	}
	destroyImageView = func(dev vk.Device, view vk.ImageView) {
		*destroyed++
	}
	t.Cleanup(func() {
		createImageView, destroyImageView = oldC, oldD
	})
	return
}

func testSubres(aspects vk.ImageAspectFlagBits, layers uint32) vk.ImageSubresourceLayers {
	return vk.ImageSubresourceLayers{
		AspectMask: vk.ImageAspectFlags(aspects),
		MipLevel:   0,
		LayerCount: layers,
	}
}

func TestViewsColorSource(t *testing.T) {
	infos, _ := stubImageViews(t)
	dst := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatR8g8b8a8Unorm}
	src := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatR8g8b8a8Unorm}
	vw := NewViews(nil, dst, testSubres(vk.ImageAspectColorBit, 1), vk.FormatR8g8b8a8Unorm,
		src, testSubres(vk.ImageAspectColorBit, 1), vk.FormatR8g8b8a8Uint)
	if vw.DstView == nil || vw.SrcView == nil {
		t.Fatal("missing destination or source view")
	}
	if vw.SrcStencilView != nil {
		t.Errorf("color source must not produce a stencil view")
	}
	if len(*infos) != 2 {
		t.Errorf("expected 2 view creations, got %d", len(*infos))
	}
	// the source view reinterprets the format
	if (*infos)[1].Format != vk.FormatR8g8b8a8Uint {
		t.Errorf("source view format not applied")
	}
}

func TestViewsDepthOnlySource(t *testing.T) {
	infos, _ := stubImageViews(t)
	dst := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatR32Sfloat}
	src := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatD32Sfloat}
	vw := NewViews(nil, dst, testSubres(vk.ImageAspectColorBit, 1), vk.FormatR32Sfloat,
		src, testSubres(vk.ImageAspectDepthBit, 1), vk.FormatR32Sfloat)
	if vw.SrcStencilView != nil {
		t.Errorf("depth-only source must not produce a stencil view")
	}
	if len(*infos) != 2 {
		t.Errorf("expected 2 view creations, got %d", len(*infos))
	}
}

func TestViewsDepthStencilSource(t *testing.T) {
	infos, _ := stubImageViews(t)
	dst := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatD24UnormS8Uint}
	src := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatD24UnormS8Uint}
	vw := NewViews(nil, dst, testSubres(vk.ImageAspectDepthBit|vk.ImageAspectStencilBit, 1), vk.FormatD24UnormS8Uint,
		src, testSubres(vk.ImageAspectDepthBit|vk.ImageAspectStencilBit, 1), vk.FormatD24UnormS8Uint)
	if vw.SrcStencilView == nil {
		t.Fatal("combined depth-stencil source must produce a stencil view")
	}
	if len(*infos) != 3 {
		t.Fatalf("expected 3 view creations, got %d", len(*infos))
	}
	st := (*infos)[2]
	if st.SubresourceRange.AspectMask != vk.ImageAspectFlags(vk.ImageAspectStencilBit) {
		t.Errorf("stencil view aspect not narrowed to stencil")
	}
	if st.Format != src.Format {
		t.Errorf("stencil view must keep the native source format")
	}
}

func TestViewsDestroy(t *testing.T) {
	infos, destroyed := stubImageViews(t)
	dst := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatD32SfloatS8Uint}
	src := &ImageParams{Type: vk.ImageType2d, Format: vk.FormatD32SfloatS8Uint}
	vw := NewViews(nil, dst, testSubres(vk.ImageAspectDepthBit|vk.ImageAspectStencilBit, 1), vk.FormatD32SfloatS8Uint,
		src, testSubres(vk.ImageAspectDepthBit|vk.ImageAspectStencilBit, 1), vk.FormatD32SfloatS8Uint)
	created := len(*infos)
	vw.Destroy()
	if *destroyed != created {
		t.Errorf("destroyed %d views, created %d", *destroyed, created)
	}
	if vw.DstView != nil || vw.SrcView != nil || vw.SrcStencilView != nil {
		t.Errorf("views not cleared after Destroy")
	}
	// Destroy after Destroy releases nothing further
	vw.Destroy()
	if *destroyed != created {
		t.Errorf("second Destroy released views again")
	}
}

func TestViewTypeForImage(t *testing.T) {
	tests := []struct {
		typ    vk.ImageType
		layers uint32
		want   vk.ImageViewType
	}{
		{vk.ImageType1d, 1, vk.ImageViewType1d},
		{vk.ImageType1d, 4, vk.ImageViewType1dArray},
		{vk.ImageType2d, 1, vk.ImageViewType2d},
		{vk.ImageType2d, 6, vk.ImageViewType2dArray},
		{vk.ImageType3d, 1, vk.ImageViewType3d},
	}
	for _, tt := range tests {
		if got := ViewTypeForImage(tt.typ, tt.layers); got != tt.want {
			t.Errorf("ViewTypeForImage(%v, %d) = %v, want %v", tt.typ, tt.layers, got, tt.want)
		}
	}
}
