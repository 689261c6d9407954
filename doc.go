// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vcopy builds and memoizes the Vulkan pipelines needed to copy
image and buffer data when no native transfer command applies:
cross-aspect color / depth / stencil conversion, format reinterpretation,
and aspect-specific stencil export.

The Cache owns every pipeline it builds for the lifetime of the device,
keyed by the copy configuration (view type, formats, aspects, sample
count), so repeated copies with the same configuration reuse one
pipeline.  Shader modules and pipeline layouts come from external
providers; image views for a single copy invocation are managed by
Views, created per call and destroyed when the call scope ends.
*/
package vcopy
