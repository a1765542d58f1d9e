// Package keycode defines virtual key codes for keyboard event
// synthesis.
//
// Codes from Return through UpArrow are independent of keyboard
// layout. The ANSI codes name physical key positions on a US layout;
// the character they produce depends on the active layout.
package keycode

// Layout-independent keys.
const (
	Return        uint16 = 0x24
	Tab           uint16 = 0x30
	Space         uint16 = 0x31
	Delete        uint16 = 0x33
	Escape        uint16 = 0x35
	Command       uint16 = 0x37
	Shift         uint16 = 0x38
	CapsLock      uint16 = 0x39
	Option        uint16 = 0x3A
	Control       uint16 = 0x3B
	RightCommand  uint16 = 0x36
	RightShift    uint16 = 0x3C
	RightOption   uint16 = 0x3D
	RightControl  uint16 = 0x3E
	Function      uint16 = 0x3F
	VolumeUp      uint16 = 0x48
	VolumeDown    uint16 = 0x49
	Mute          uint16 = 0x4A
	F1            uint16 = 0x7A
	F2            uint16 = 0x78
	F3            uint16 = 0x63
	F4            uint16 = 0x76
	F5            uint16 = 0x60
	F6            uint16 = 0x61
	F7            uint16 = 0x62
	F8            uint16 = 0x64
	F9            uint16 = 0x65
	F10           uint16 = 0x6D
	F11           uint16 = 0x67
	F12           uint16 = 0x6F
	F13           uint16 = 0x69
	F14           uint16 = 0x6B
	F15           uint16 = 0x71
	F16           uint16 = 0x6A
	F17           uint16 = 0x40
	F18           uint16 = 0x4F
	F19           uint16 = 0x50
	F20           uint16 = 0x5A
	Help          uint16 = 0x72
	Home          uint16 = 0x73
	PageUp        uint16 = 0x74
	ForwardDelete uint16 = 0x75
	End           uint16 = 0x77
	PageDown      uint16 = 0x79
	LeftArrow     uint16 = 0x7B
	RightArrow    uint16 = 0x7C
	DownArrow     uint16 = 0x7D
	UpArrow       uint16 = 0x7E
)

// ANSI layout positions.
const (
	AnsiA            uint16 = 0x00
	AnsiS            uint16 = 0x01
	AnsiD            uint16 = 0x02
	AnsiF            uint16 = 0x03
	AnsiH            uint16 = 0x04
	AnsiG            uint16 = 0x05
	AnsiZ            uint16 = 0x06
	AnsiX            uint16 = 0x07
	AnsiC            uint16 = 0x08
	AnsiV            uint16 = 0x09
	AnsiB            uint16 = 0x0B
	AnsiQ            uint16 = 0x0C
	AnsiW            uint16 = 0x0D
	AnsiE            uint16 = 0x0E
	AnsiR            uint16 = 0x0F
	AnsiY            uint16 = 0x10
	AnsiT            uint16 = 0x11
	Ansi1            uint16 = 0x12
	Ansi2            uint16 = 0x13
	Ansi3            uint16 = 0x14
	Ansi4            uint16 = 0x15
	Ansi6            uint16 = 0x16
	Ansi5            uint16 = 0x17
	AnsiEqual        uint16 = 0x18
	Ansi9            uint16 = 0x19
	Ansi7            uint16 = 0x1A
	AnsiMinus        uint16 = 0x1B
	Ansi8            uint16 = 0x1C
	Ansi0            uint16 = 0x1D
	AnsiRightBracket uint16 = 0x1E
	AnsiO            uint16 = 0x1F
	AnsiU            uint16 = 0x20
	AnsiLeftBracket  uint16 = 0x21
	AnsiI            uint16 = 0x22
	AnsiP            uint16 = 0x23
	AnsiL            uint16 = 0x25
	AnsiJ            uint16 = 0x26
	AnsiQuote        uint16 = 0x27
	AnsiK            uint16 = 0x28
	AnsiSemicolon    uint16 = 0x29
	AnsiBackslash    uint16 = 0x2A
	AnsiComma        uint16 = 0x2B
	AnsiSlash        uint16 = 0x2C
	AnsiN            uint16 = 0x2D
	AnsiM            uint16 = 0x2E
	AnsiPeriod       uint16 = 0x2F
	AnsiGrave        uint16 = 0x32
	AnsiKeypadDot    uint16 = 0x41
	AnsiKeypadStar   uint16 = 0x43
	AnsiKeypadPlus   uint16 = 0x45
	AnsiKeypadSlash  uint16 = 0x4B
	AnsiKeypadMinus  uint16 = 0x4E
	AnsiKeypad0      uint16 = 0x52
	AnsiKeypad1      uint16 = 0x53
	AnsiKeypad2      uint16 = 0x54
	AnsiKeypad3      uint16 = 0x55
	AnsiKeypad4      uint16 = 0x56
	AnsiKeypad5      uint16 = 0x57
	AnsiKeypad6      uint16 = 0x58
	AnsiKeypad7      uint16 = 0x59
	AnsiKeypad8      uint16 = 0x5B
	AnsiKeypad9      uint16 = 0x5C
)
