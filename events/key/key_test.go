// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodesString(t *testing.T) {
	assert.Equal(t, "A", CodeA.String())
	assert.Equal(t, "Z", CodeZ.String())
	assert.Equal(t, "1", Code1.String())
	assert.Equal(t, "0", Code0.String())
	assert.Equal(t, "F12", CodeF12.String())
	assert.Equal(t, "Escape", CodeEscape.String())
	assert.Equal(t, "Spacebar", CodeSpacebar.String())
	assert.Equal(t, "Codes(999)", Codes(999).String())
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	assert.Equal(t, "", m.String())
	m.SetFlag(true, Shift, Control)
	assert.True(t, m.HasFlag(Shift))
	assert.False(t, m.HasFlag(Alt))
	assert.Equal(t, "Control|Shift", m.String())
	m.SetFlag(false, Control)
	assert.Equal(t, "Shift", m.String())
}
