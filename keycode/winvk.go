package keycode

// winToMac maps Windows virtual-key codes onto the codes defined in
// this package. Keys with no counterpart are absent.
var winToMac = map[uint16]uint16{
	// Letters. VK_A is 0x41.
	0x41: AnsiA,
	0x42: AnsiB,
	0x43: AnsiC,
	0x44: AnsiD,
	0x45: AnsiE,
	0x46: AnsiF,
	0x47: AnsiG,
	0x48: AnsiH,
	0x49: AnsiI,
	0x4A: AnsiJ,
	0x4B: AnsiK,
	0x4C: AnsiL,
	0x4D: AnsiM,
	0x4E: AnsiN,
	0x4F: AnsiO,
	0x50: AnsiP,
	0x51: AnsiQ,
	0x52: AnsiR,
	0x53: AnsiS,
	0x54: AnsiT,
	0x55: AnsiU,
	0x56: AnsiV,
	0x57: AnsiW,
	0x58: AnsiX,
	0x59: AnsiY,
	0x5A: AnsiZ,

	// Digit row. VK_0 is 0x30.
	0x30: Ansi0,
	0x31: Ansi1,
	0x32: Ansi2,
	0x33: Ansi3,
	0x34: Ansi4,
	0x35: Ansi5,
	0x36: Ansi6,
	0x37: Ansi7,
	0x38: Ansi8,
	0x39: Ansi9,

	// Function row. VK_F1 is 0x70.
	0x70: F1,
	0x71: F2,
	0x72: F3,
	0x73: F4,
	0x74: F5,
	0x75: F6,
	0x76: F7,
	0x77: F8,
	0x78: F9,
	0x79: F10,
	0x7A: F11,
	0x7B: F12,

	// Editing and modifiers.
	0x08: Delete, // Backspace
	0x09: Tab,
	0x0D: Return,
	0x10: Shift,
	0x11: Control,
	0x12: Option, // Alt
	0x14: CapsLock,
	0x1B: Escape,
	0x20: Space,

	// Arrows.
	0x25: LeftArrow,
	0x26: UpArrow,
	0x27: RightArrow,
	0x28: DownArrow,

	// Navigation block.
	0x21: PageUp,
	0x22: PageDown,
	0x23: End,
	0x24: Home,
	0x2D: Help,          // Insert
	0x2E: ForwardDelete, // Delete

	// Sided modifiers.
	0x5B: Command, // Left Windows
	0x5C: RightCommand,
	0xA0: Shift,
	0xA1: RightShift,
	0xA2: Control,
	0xA3: RightControl,
	0xA4: Option,
	0xA5: RightOption,

	// OEM punctuation on a US layout.
	0xBA: AnsiSemicolon,
	0xBB: AnsiEqual,
	0xBC: AnsiComma,
	0xBD: AnsiMinus,
	0xBE: AnsiPeriod,
	0xBF: AnsiSlash,
	0xC0: AnsiGrave,
	0xDB: AnsiLeftBracket,
	0xDC: AnsiBackslash,
	0xDD: AnsiRightBracket,
	0xDE: AnsiQuote,

	// Numpad.
	0x60: AnsiKeypad0,
	0x61: AnsiKeypad1,
	0x62: AnsiKeypad2,
	0x63: AnsiKeypad3,
	0x64: AnsiKeypad4,
	0x65: AnsiKeypad5,
	0x66: AnsiKeypad6,
	0x67: AnsiKeypad7,
	0x68: AnsiKeypad8,
	0x69: AnsiKeypad9,
	0x6A: AnsiKeypadStar,
	0x6B: AnsiKeypadPlus,
	0x6D: AnsiKeypadMinus,
	0x6E: AnsiKeypadDot,
	0x6F: AnsiKeypadSlash,
}

// FromWindowsVK translates a Windows virtual-key code. Reports false
// for keys with no counterpart here.
func FromWindowsVK(vk uint16) (uint16, bool) {
	code, ok := winToMac[vk]
	return code, ok
}
