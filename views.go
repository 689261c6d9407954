// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	vk "github.com/goki/vulkan"
)

// ImageParams carries the image handle and the static properties of an
// externally owned image that view creation needs.  The image itself is
// never allocated or freed here, only viewed.
type ImageParams struct {
	Image  vk.Image     `desc:"image handle, externally owned"`
	Type   vk.ImageType `desc:"image dimensionality"`
	Format vk.Format    `desc:"native format of the image"`
}

// Views holds the transient image views for one image to image copy
// invocation: the destination view, the source view, and a stencil-only
// source view present exactly when the source subresource combines depth
// and stencil aspects.  All views are owned by this instance and released
// by Destroy when the copy call scope ends.
type Views struct {
	DstView        vk.ImageView `desc:"destination view in the requested destination format"`
	SrcView        vk.ImageView `desc:"source view in the requested source format"`
	SrcStencilView vk.ImageView `desc:"stencil-only source view, nil unless the source subresource has both depth and stencil"`
	Dev            vk.Device    `desc:"device the views were created on"`
}

// NewViews creates the views for one copy invocation.  The requested view
// formats may differ from the images' native formats, reinterpreting the
// data without copying it.
func NewViews(dev vk.Device, dst *ImageParams, dstSubres vk.ImageSubresourceLayers, dstFormat vk.Format, src *ImageParams, srcSubres vk.ImageSubresourceLayers, srcFormat vk.Format) *Views {
	vw := &Views{Dev: dev}
	vw.DstView = createImageView(dev, &vk.ImageViewCreateInfo{
		SType:            vk.StructureTypeImageViewCreateInfo,
		Image:            dst.Image,
		ViewType:         ViewTypeForImage(dst.Type, dstSubres.LayerCount),
		Format:           dstFormat,
		SubresourceRange: subresRange(dstSubres),
	})
	vw.SrcView = createImageView(dev, &vk.ImageViewCreateInfo{
		SType:            vk.StructureTypeImageViewCreateInfo,
		Image:            src.Image,
		ViewType:         ViewTypeForImage(src.Type, srcSubres.LayerCount),
		Format:           srcFormat,
		SubresourceRange: subresRange(srcSubres),
	})

	ds := vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)
	if srcSubres.AspectMask&ds == ds {
		stSubres := srcSubres
		stSubres.AspectMask = vk.ImageAspectFlags(vk.ImageAspectStencilBit)
		vw.SrcStencilView = createImageView(dev, &vk.ImageViewCreateInfo{
			SType:            vk.StructureTypeImageViewCreateInfo,
			Image:            src.Image,
			ViewType:         ViewTypeForImage(src.Type, srcSubres.LayerCount),
			Format:           src.Format,
			SubresourceRange: subresRange(stSubres),
		})
	}
	return vw
}

// Destroy releases all views created for this invocation.
func (vw *Views) Destroy() {
	if vw.DstView != nil {
		destroyImageView(vw.Dev, vw.DstView)
		vw.DstView = nil
	}
	if vw.SrcView != nil {
		destroyImageView(vw.Dev, vw.SrcView)
		vw.SrcView = nil
	}
	if vw.SrcStencilView != nil {
		destroyImageView(vw.Dev, vw.SrcStencilView)
		vw.SrcStencilView = nil
	}
	vw.Dev = nil
}

// ViewTypeForImage returns the view type for an image of given
// dimensionality, using the array form when more than one layer is viewed.
func ViewTypeForImage(typ vk.ImageType, layers uint32) vk.ImageViewType {
	switch typ {
	case vk.ImageType1d:
		if layers > 1 {
			return vk.ImageViewType1dArray
		}
		return vk.ImageViewType1d
	case vk.ImageType3d:
		return vk.ImageViewType3d
	}
	if layers > 1 {
		return vk.ImageViewType2dArray
	}
	return vk.ImageViewType2d
}

// subresRange widens a subresource layers selection to the single-level
// range a view is created over.
func subresRange(sub vk.ImageSubresourceLayers) vk.ImageSubresourceRange {
	return vk.ImageSubresourceRange{
		AspectMask:     sub.AspectMask,
		BaseMipLevel:   sub.MipLevel,
		LevelCount:     1,
		BaseArrayLayer: sub.BaseArrayLayer,
		LayerCount:     sub.LayerCount,
	}
}
