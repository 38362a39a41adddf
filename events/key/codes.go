// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines physical key codes and modifier keys.
package key

import "strconv"

// Codes is the identity of a physical key, independent of the
// keyboard layout and modifiers.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	CodeReturnEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpacebar

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	CodeHome
	CodePageUp
	CodeDelete
	CodeEnd
	CodePageDown
	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow

	CodeLeftControl
	CodeLeftShift
	CodeLeftAlt
	CodeLeftMeta
	CodeRightControl
	CodeRightShift
	CodeRightAlt
	CodeRightMeta

	codesN
)

var codesNames = map[Codes]string{
	CodeUnknown:      "Unknown",
	CodeReturnEnter:  "ReturnEnter",
	CodeEscape:       "Escape",
	CodeBackspace:    "Backspace",
	CodeTab:          "Tab",
	CodeSpacebar:     "Spacebar",
	CodeHome:         "Home",
	CodePageUp:       "PageUp",
	CodeDelete:       "Delete",
	CodeEnd:          "End",
	CodePageDown:     "PageDown",
	CodeRightArrow:   "RightArrow",
	CodeLeftArrow:    "LeftArrow",
	CodeDownArrow:    "DownArrow",
	CodeUpArrow:      "UpArrow",
	CodeLeftControl:  "LeftControl",
	CodeLeftShift:    "LeftShift",
	CodeLeftAlt:      "LeftAlt",
	CodeLeftMeta:     "LeftMeta",
	CodeRightControl: "RightControl",
	CodeRightShift:   "RightShift",
	CodeRightAlt:     "RightAlt",
	CodeRightMeta:    "RightMeta",
}

// String returns the name of the key without the Code prefix,
// such as "A", "1", "F5" or "Escape".
func (c Codes) String() string {
	switch {
	case c >= CodeA && c <= CodeZ:
		return string(rune('A' + c - CodeA))
	case c >= Code1 && c <= Code9:
		return string(rune('1' + c - Code1))
	case c == Code0:
		return "0"
	case c >= CodeF1 && c <= CodeF12:
		return "F" + strconv.Itoa(int(c-CodeF1)+1)
	}
	if nm, ok := codesNames[c]; ok {
		return nm
	}
	return "Codes(" + strconv.Itoa(int(c)) + ")"
}
