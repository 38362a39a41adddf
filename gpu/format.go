// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a render target.
type TextureFormat struct {
	// Size of image
	Size image.Point

	// Texture format: RGBA8UnormSrgb is default
	Format wgpu.TextureFormat

	// number of samples, 1 for a surface
	Samples int
}

func (tf *TextureFormat) Defaults() {
	tf.Format = wgpu.TextureFormatRGBA8UnormSrgb
	tf.Samples = 1
}

// String returns human-readable version of format
func (tf *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %s  MultiSample: %d", tf.Size, FormatName(tf.Format), tf.Samples)
}

// Set sets width, height and format
func (tf *TextureFormat) Set(w, h int, ft wgpu.TextureFormat) {
	tf.Size = image.Point{X: w, Y: h}
	tf.Format = ft
}

// IsSRGB returns true if the format stores color in the sRGB
// encoding, including the block compressed formats.
func IsSRGB(ft wgpu.TextureFormat) bool {
	switch ft {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatBC1RGBAUnormSrgb, wgpu.TextureFormatBC2RGBAUnormSrgb,
		wgpu.TextureFormatBC3RGBAUnormSrgb, wgpu.TextureFormatBC7RGBAUnormSrgb,
		wgpu.TextureFormatETC2RGB8UnormSrgb, wgpu.TextureFormatETC2RGB8A1UnormSrgb,
		wgpu.TextureFormatETC2RGBA8UnormSrgb,
		wgpu.TextureFormatASTC4x4UnormSrgb, wgpu.TextureFormatASTC5x4UnormSrgb,
		wgpu.TextureFormatASTC5x5UnormSrgb, wgpu.TextureFormatASTC6x5UnormSrgb,
		wgpu.TextureFormatASTC6x6UnormSrgb, wgpu.TextureFormatASTC8x5UnormSrgb,
		wgpu.TextureFormatASTC8x6UnormSrgb, wgpu.TextureFormatASTC8x8UnormSrgb,
		wgpu.TextureFormatASTC10x5UnormSrgb, wgpu.TextureFormatASTC10x6UnormSrgb,
		wgpu.TextureFormatASTC10x8UnormSrgb, wgpu.TextureFormatASTC10x10UnormSrgb,
		wgpu.TextureFormatASTC12x10UnormSrgb, wgpu.TextureFormatASTC12x12UnormSrgb:
		return true
	}
	return false
}

// SelectSurfaceFormat returns the first sRGB format in the capability
// order, or the first listed format if none is sRGB.
func SelectSurfaceFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrNoSurfaceFormats
	}
	if i := slices.IndexFunc(formats, IsSRGB); i >= 0 {
		return formats[i], nil
	}
	return formats[0], nil
}

// noVSyncModes are the present modes tried in order when
// vertical sync is off, lowest latency first.
var noVSyncModes = []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeMailbox}

// SelectPresentMode returns Fifo when vsync is on. Otherwise it
// returns Immediate if supported, else Mailbox, else Fifo, which
// every surface supports.
func SelectPresentMode(modes []wgpu.PresentMode, vsync bool) wgpu.PresentMode {
	if vsync {
		return wgpu.PresentModeFifo
	}
	for _, pm := range noVSyncModes {
		if slices.Contains(modes, pm) {
			return pm
		}
	}
	return wgpu.PresentModeFifo
}

// SurfaceConfig returns the surface configuration for the given
// capabilities and framebuffer size: render attachment usage,
// the format from [SelectSurfaceFormat], the present mode from
// [SelectPresentMode] and the first listed alpha mode.
func SurfaceConfig(caps wgpu.SurfaceCapabilities, size image.Point, vsync bool) (*wgpu.SurfaceConfiguration, error) {
	ft, err := SelectSurfaceFormat(caps.Formats)
	if err != nil {
		return nil, err
	}
	alpha := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}
	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      ft,
		Width:       uint32(max(size.X, 0)),
		Height:      uint32(max(size.Y, 0)),
		PresentMode: SelectPresentMode(caps.PresentModes, vsync),
		AlphaMode:   alpha,
	}, nil
}

// FormatName returns a human-readable name for the given format.
func FormatName(ft wgpu.TextureFormat) string {
	if nm, ok := TextureFormatNames[ft]; ok {
		return nm
	}
	return ft.String()
}

// most commonly available formats: https://WebGPU.gpuinfo.org/listsurfaceformats.php

// TextureFormatNames translates image format into human-readable string
// for most commonly available surface formats
var TextureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA 8bit sRGB colorspace",
	wgpu.TextureFormatRGBA8Unorm:     "RGBA 8bit unsigned linear colorspace",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA 8bit sRGB colorspace",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA 8bit unsigned linear colorspace",
	wgpu.TextureFormatRGBA16Float:    "RGBA 16bit floating point linear colorspace",
	wgpu.TextureFormatRGB10A2Unorm:   "RGB 10bit, 2bit alpha, unsigned linear colorspace",
}
