// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"time"

	"cogentcore.org/lyra/base/errors"
)

// FrameRenderer draws one [Geometry] with one [GraphicsPipeline]
// into a [Surface] each frame: acquire a texture, record a render
// pass that clears and draws, submit it, and present.
type FrameRenderer struct {
	Device   *Device
	Surface  *Surface
	Render   Render
	Pipeline *GraphicsPipeline
	Geometry *Geometry

	// FrameCount is the number of frames presented.
	FrameCount int

	// FPSInterval is how often the frame rate is logged at
	// Debug level. Zero disables it.
	FPSInterval time.Duration

	fpsFrames int
	fpsStart  time.Time

	// draw records and presents one frame; nil means [FrameRenderer.frame].
	draw func() error
}

// RenderFrame renders and presents one frame. It does nothing while the
// surface is suspended. A recoverable surface error reconfigures the
// surface and retries once; if that also fails recoverably, the frame
// is dropped with a warning and nil is returned. Other errors are
// returned and are fatal.
func (fr *FrameRenderer) RenderFrame() error {
	if fr.Surface.Suspended() {
		return nil
	}
	draw := fr.draw
	if draw == nil {
		draw = fr.frame
	}
	err := retryFrame(draw, fr.Surface.Reconfigure)
	switch {
	case err == nil:
		fr.countFrame()
		return nil
	case IsRecoverable(err):
		slog.Warn("gpu: frame dropped", "err", err)
		return nil
	}
	return err
}

// retryFrame calls frame, and if it fails recoverably,
// calls reconfigure and frame once more.
func retryFrame(frame func() error, reconfigure func()) error {
	err := frame()
	if !IsRecoverable(err) {
		return err
	}
	slog.Debug("gpu: reconfiguring surface", "err", err)
	reconfigure()
	return frame()
}

func (fr *FrameRenderer) frame() error {
	tex, view, err := fr.Surface.AcquireNextTexture()
	if err != nil {
		return err
	}
	defer tex.Release()
	defer view.Release()

	cmd, err := fr.Device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return &Error{Kind: KindFatal, Op: "create command encoder", Err: err}
	}
	defer cmd.Release()

	rp := fr.Render.BeginRenderPass(cmd, view)
	if err := fr.Pipeline.Bind(rp); err != nil {
		rp.End()
		rp.Release()
		return err
	}
	fr.Geometry.BindDraw(rp)
	rp.End()
	rp.Release() // must happen before Finish

	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return &Error{Kind: KindFatal, Op: "finish commands", Err: err}
	}
	defer cmdBuffer.Release()
	fr.Device.Queue.Submit(cmdBuffer)
	fr.Surface.Present()
	return nil
}

func (fr *FrameRenderer) countFrame() {
	fr.FrameCount++
	if fr.FPSInterval <= 0 {
		return
	}
	now := time.Now()
	if fr.fpsStart.IsZero() {
		fr.fpsStart = now
	}
	fr.fpsFrames++
	dur := now.Sub(fr.fpsStart)
	if dur >= fr.FPSInterval {
		slog.Debug("gpu: frame rate", "fps", float64(fr.fpsFrames)/dur.Seconds(), "frames", fr.FrameCount)
		fr.fpsFrames = 0
		fr.fpsStart = now
	}
}
