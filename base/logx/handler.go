// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record:
// the level (colored when the output is a terminal), the message,
// and then key=value attributes.
type Handler struct {
	level  slog.Leveler
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// NewHandler returns a new [Handler] writing to w,
// using the color profile detected for w.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		level: level,
		out:   termenv.NewOutput(w, opts...),
		mu:    &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, lv slog.Level) bool {
	return lv >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

// levelString returns the level name, colored by severity.
func (h *Handler) levelString(lv slog.Level) string {
	s := h.out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lv >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, gp, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	v := a.Value.String()
	if strings.ContainsAny(v, " =\"") {
		v = fmt.Sprintf("%q", v)
	}
	b.WriteString(v)
}
