// Package keymap holds the static lookup tables that translate between
// human-readable names and the codes the file format stores: Windows
// virtual-key codes for keyboard actions and short context codes for mouse
// gestures.
//
// The tables are process-wide immutable configuration. They are plain
// package-level maps populated at initialization and never mutated; every
// lookup is a pure function over them, safe for unsynchronized concurrent
// use. The codec packages treat them as supplied configuration: a name
// missing from a table is an input problem reported to the caller, never a
// codec defect.
package keymap

import "strings"

// keyCodes maps lowercase key names to Windows virtual-key codes. The set
// covers letters, digits, function keys, navigation, generic and sided
// modifiers, punctuation, and toggles, with the common aliases accepted in
// manifests (enter/return, escape/esc, ctrl/control, caps/capslock).
var keyCodes = map[string]uint16{
	// Letters
	"a": 65, "b": 66, "c": 67, "d": 68, "e": 69, "f": 70, "g": 71,
	"h": 72, "i": 73, "j": 74, "k": 75, "l": 76, "m": 77, "n": 78,
	"o": 79, "p": 80, "q": 81, "r": 82, "s": 83, "t": 84, "u": 85,
	"v": 86, "w": 87, "x": 88, "y": 89, "z": 90,
	// Digits
	"0": 48, "1": 49, "2": 50, "3": 51, "4": 52,
	"5": 53, "6": 54, "7": 55, "8": 56, "9": 57,
	// Function keys
	"f1": 112, "f2": 113, "f3": 114, "f4": 115, "f5": 116, "f6": 117,
	"f7": 118, "f8": 119, "f9": 120, "f10": 121, "f11": 122, "f12": 123,
	// Special keys
	"enter": 13, "return": 13, "escape": 27, "esc": 27, "space": 32,
	"tab": 9, "backspace": 8, "delete": 46, "insert": 45,
	"home": 36, "end": 35, "pageup": 33, "pagedown": 34,
	// Arrows
	"left": 37, "up": 38, "right": 39, "down": 40,
	// Generic modifiers
	"shift": 16, "ctrl": 17, "control": 17, "alt": 18,
	"win": 91, "windows": 91,
	// Sided modifiers, for chording
	"lshift": 160, "rshift": 161,
	"lctrl": 162, "lcontrol": 162, "rctrl": 163, "rcontrol": 163,
	"lalt": 164, "ralt": 165,
	"lwin": 91, "rwin": 92,
	// Punctuation
	"comma": 188, "period": 190, "slash": 191, "semicolon": 186,
	"quote": 222, "bracket_left": 219, "lbracket": 219,
	"bracket_right": 221, "rbracket": 221,
	"backslash": 220, "minus": 189, "equals": 187,
	"grave": 192, "backtick": 192,
	// Toggles
	"capslock": 20, "caps": 20, "numlock": 144, "scrolllock": 145,
}

// keyNames maps virtual-key codes back to canonical uppercase names, used
// when exporting decoded profiles in human-readable form. It is wider than
// keyCodes: decoded files can reference numpad and media keys that the
// manifest shorthand never produces.
var keyNames = map[uint16]string{
	// Letters
	0x41: "A", 0x42: "B", 0x43: "C", 0x44: "D", 0x45: "E",
	0x46: "F", 0x47: "G", 0x48: "H", 0x49: "I", 0x4A: "J",
	0x4B: "K", 0x4C: "L", 0x4D: "M", 0x4E: "N", 0x4F: "O",
	0x50: "P", 0x51: "Q", 0x52: "R", 0x53: "S", 0x54: "T",
	0x55: "U", 0x56: "V", 0x57: "W", 0x58: "X", 0x59: "Y", 0x5A: "Z",
	// Digits
	0x30: "0", 0x31: "1", 0x32: "2", 0x33: "3", 0x34: "4",
	0x35: "5", 0x36: "6", 0x37: "7", 0x38: "8", 0x39: "9",
	// Function keys
	0x70: "F1", 0x71: "F2", 0x72: "F3", 0x73: "F4",
	0x74: "F5", 0x75: "F6", 0x76: "F7", 0x77: "F8",
	0x78: "F9", 0x79: "F10", 0x7A: "F11", 0x7B: "F12",
	// Modifiers
	0xA0: "LSHIFT", 0xA1: "RSHIFT", 0xA2: "LCTRL", 0xA3: "RCTRL",
	0xA4: "LALT", 0xA5: "RALT", 0x5B: "LWIN", 0x5C: "RWIN",
	0x10: "SHIFT", 0x11: "CTRL", 0x12: "ALT",
	// Navigation
	0x25: "LEFT", 0x26: "UP", 0x27: "RIGHT", 0x28: "DOWN",
	0x21: "PAGEUP", 0x22: "PAGEDOWN", 0x23: "END", 0x24: "HOME",
	0x2D: "INSERT", 0x2E: "DELETE",
	// Common keys
	0x08: "BACKSPACE", 0x09: "TAB", 0x0D: "ENTER", 0x1B: "ESCAPE",
	0x20: "SPACE", 0x14: "CAPSLOCK", 0x90: "NUMLOCK", 0x91: "SCROLLLOCK",
	0x2C: "PRINTSCREEN", 0x13: "PAUSE",
	// Punctuation
	0xBA: "SEMICOLON", 0xBB: "EQUALS", 0xBC: "COMMA", 0xBD: "MINUS",
	0xBE: "PERIOD", 0xBF: "SLASH", 0xC0: "BACKTICK",
	0xDB: "LBRACKET", 0xDC: "BACKSLASH", 0xDD: "RBRACKET", 0xDE: "QUOTE",
	// Numpad
	0x60: "NUMPAD0", 0x61: "NUMPAD1", 0x62: "NUMPAD2", 0x63: "NUMPAD3",
	0x64: "NUMPAD4", 0x65: "NUMPAD5", 0x66: "NUMPAD6", 0x67: "NUMPAD7",
	0x68: "NUMPAD8", 0x69: "NUMPAD9",
	0x6A: "MULTIPLY", 0x6B: "ADD", 0x6C: "SEPARATOR",
	0x6D: "SUBTRACT", 0x6E: "DECIMAL", 0x6F: "DIVIDE",
	// Media keys
	0xAD: "MUTE", 0xAE: "VOLUMEDOWN", 0xAF: "VOLUMEUP",
	0xB0: "NEXTTRACK", 0xB1: "PREVTRACK", 0xB2: "STOP", 0xB3: "PLAYPAUSE",
}

// contextCodes maps normalized gesture names ("{button}_{action}") to the
// short context codes the format stores. Buttons are left, middle, right,
// back (4), forward (5); actions are click, double_click, triple_click,
// down, up, toggle; scroll gestures map to the SF/SB/SL/SR codes. A few
// short aliases cover the common cases.
var contextCodes = map[string]string{
	"left_click": "LC", "left_double_click": "LDC", "left_triple_click": "LTC",
	"left_down": "LD", "left_up": "LU", "left_toggle": "LT",
	"middle_click": "MC", "middle_double_click": "MDC", "middle_triple_click": "MTC",
	"middle_down": "MD", "middle_up": "MU", "middle_toggle": "MT",
	"right_click": "RC", "right_double_click": "RDC", "right_triple_click": "RTC",
	"right_down": "RD", "right_up": "RU", "right_toggle": "RT",
	"back_click": "4C", "back_double_click": "4DC", "back_triple_click": "4TC",
	"back_down": "4D", "back_up": "4U", "back_toggle": "4T",
	"forward_click": "5C", "forward_double_click": "5DC", "forward_triple_click": "5TC",
	"forward_down": "5D", "forward_up": "5U", "forward_toggle": "5T",
	"scroll_up": "SF", "scroll_down": "SB", "scroll_left": "SL", "scroll_right": "SR",
	// Short aliases; bare double/triple click defaults to the left button.
	"lc": "LC", "rc": "RC", "mc": "MC",
	"double_click": "LDC", "triple_click": "LTC",
}

// gestureNames maps context codes back to canonical gesture names.
var gestureNames = func() map[string]string {
	m := make(map[string]string, len(contextCodes))
	for name, code := range contextCodes {
		// Skip aliases so each code maps to its canonical spelling.
		if cur, ok := m[code]; ok && len(cur) >= len(name) {
			continue
		}
		m[code] = name
	}

	// Aliases are shorter than the canonical names, so re-assert the
	// canonical forms they collide with.
	m["LC"] = "left_click"
	m["RC"] = "right_click"
	m["MC"] = "middle_click"
	m["LDC"] = "left_double_click"
	m["LTC"] = "left_triple_click"

	return m
}()

// KeyCode returns the virtual-key code for a key name. Lookup is
// case-insensitive.
func KeyCode(name string) (uint16, bool) {
	code, ok := keyCodes[strings.ToLower(name)]
	return code, ok
}

// KeyName returns the canonical uppercase name for a virtual-key code.
func KeyName(code uint16) (string, bool) {
	name, ok := keyNames[code]
	return name, ok
}

// ContextCode returns the stored context code for a mouse gesture name.
// The name is normalized first: lowercased, with spaces and hyphens
// treated as underscores, so "scroll left", "scroll-left", and
// "scroll_left" all resolve.
func ContextCode(gesture string) (string, bool) {
	key := strings.ToLower(gesture)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")

	code, ok := contextCodes[key]

	return code, ok
}

// GestureName returns the canonical gesture name for a context code.
func GestureName(code string) (string, bool) {
	name, ok := gestureNames[code]
	return name, ok
}

// IsScrollContext reports whether a context code is one of the scroll
// gestures, the only codes for which a scroll-click count is meaningful.
func IsScrollContext(code string) bool {
	switch code {
	case "SF", "SB", "SL", "SR":
		return true
	default:
		return false
	}
}
