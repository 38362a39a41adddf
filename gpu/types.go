// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Types is a list of supported GPU data types for vertex attributes
// and indexes.
type Types int32

const (
	UndefinedType Types = iota

	Uint16
	Uint32

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4
)

// VertexFormat returns the WebGPU VertexFormat for given type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	return TypeToVertexFormat[tp]
}

// IndexType returns the WebGPU IndexFormat for an index type,
// which must be either Uint16 or Uint32.
func (tp Types) IndexType() wgpu.IndexFormat {
	if tp == Uint16 {
		return wgpu.IndexFormatUint16
	}
	return wgpu.IndexFormatUint32
}

var TypeToVertexFormat = map[Types]wgpu.VertexFormat{
	Uint32:         wgpu.VertexFormatUint32,
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,
}
