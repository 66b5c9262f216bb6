// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

// Standard evdev Linux input-event key codes for the keys the engine
// treats specially (modifiers, and the escape key used by the
// temp-pause combo). Ported from the teacher's keycode table
// (hotkeys/utils/keys.go in the retrieval pack), extended with the
// right-hand modifier codes that table's reverse mapping needed but the
// forward table already carried.
const (
	KeyEsc        KeyCode = 1
	KeyEnter      KeyCode = 28
	KeyLeftCtrl   KeyCode = 29
	KeyLeftShift  KeyCode = 42
	KeyRightShift KeyCode = 54
	KeyLeftAlt    KeyCode = 56
	KeyRightCtrl  KeyCode = 97
	KeyRightAlt   KeyCode = 100
	KeyLeftMeta   KeyCode = 125
	KeyRightMeta  KeyCode = 126
)

// keyNamesByCode maps evdev key codes to the lowercase name used in
// swhkdrc config files. It mirrors the teacher's GetKeyName table.
var keyNamesByCode = map[KeyCode]string{
	1:   "esc",
	2:   "1",
	3:   "2",
	4:   "3",
	5:   "4",
	6:   "5",
	7:   "6",
	8:   "7",
	9:   "8",
	10:  "9",
	11:  "0",
	12:  "minus",
	13:  "equal",
	14:  "backspace",
	15:  "tab",
	16:  "q",
	17:  "w",
	18:  "e",
	19:  "r",
	20:  "t",
	21:  "y",
	22:  "u",
	23:  "i",
	24:  "o",
	25:  "p",
	26:  "leftbrace",
	27:  "rightbrace",
	28:  "return",
	29:  "leftctrl",
	30:  "a",
	31:  "s",
	32:  "d",
	33:  "f",
	34:  "g",
	35:  "h",
	36:  "j",
	37:  "k",
	38:  "l",
	39:  "semicolon",
	40:  "apostrophe",
	41:  "grave",
	42:  "leftshift",
	43:  "backslash",
	44:  "z",
	45:  "x",
	46:  "c",
	47:  "v",
	48:  "b",
	49:  "n",
	50:  "m",
	51:  "comma",
	52:  "dot",
	53:  "slash",
	54:  "rightshift",
	55:  "kpasterisk",
	56:  "leftalt",
	57:  "space",
	58:  "capslock",
	59:  "f1",
	60:  "f2",
	61:  "f3",
	62:  "f4",
	63:  "f5",
	64:  "f6",
	65:  "f7",
	66:  "f8",
	67:  "f9",
	68:  "f10",
	69:  "numlock",
	70:  "scrolllock",
	71:  "kp7",
	72:  "kp8",
	73:  "kp9",
	74:  "kpminus",
	75:  "kp4",
	76:  "kp5",
	77:  "kp6",
	78:  "kpplus",
	79:  "kp1",
	80:  "kp2",
	81:  "kp3",
	82:  "kp0",
	83:  "kpdot",
	87:  "f11",
	88:  "f12",
	97:  "rightctrl",
	100: "rightalt",
	102: "home",
	103: "up",
	104: "pageup",
	105: "left",
	106: "right",
	107: "end",
	108: "down",
	109: "pagedown",
	110: "insert",
	111: "delete",
	125: "leftmeta",
	126: "rightmeta",
}

// keyCodesByName is the reverse of keyNamesByCode, built once at init
// along with two aliases config authors use: "enter" for "return" and
// "escape" for "esc".
var keyCodesByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyNamesByCode)+8)
	for code, name := range keyNamesByCode {
		m[name] = code
	}
	m["enter"] = KeyEnter
	m["escape"] = KeyEsc
	return m
}()

// KeyCodeByName resolves a config-file key name (case handled by the
// caller) to its evdev KeyCode. ok is false for unknown names.
func KeyCodeByName(name string) (KeyCode, bool) {
	code, ok := keyCodesByName[name]
	return code, ok
}

// KeyNameByCode is the inverse of KeyCodeByName; codes without a name
// yield "unknown".
func KeyNameByCode(code KeyCode) string {
	if name, ok := keyNamesByCode[code]; ok {
		return name
	}
	return "unknown"
}

// modifierNames maps the config-file spellings (including common
// aliases) to the logical Modifier they refer to.
var modifierNames = map[string]Modifier{
	"super":   Super,
	"mod4":    Super,
	"logo":    Super,
	"alt":     Alt,
	"control": Control,
	"ctrl":    Control,
	"shift":   Shift,
	"hyper":   Hyper,
	"meta":    Meta,
	"mod1":    Mod1,
	"mod2":    Mod2,
	"mod3":    Mod3,
	"mod5":    Mod5,
}

// ModifierByName resolves a config-file modifier name to a Modifier.
func ModifierByName(name string) (Modifier, bool) {
	m, ok := modifierNames[name]
	return m, ok
}
