package control

// Message is a control websocket payload.
type Message struct {
	T       string  `json:"t"`
	Button  string  `json:"button,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	WheelX  int32   `json:"wheelX,omitempty"`
	WheelY  int32   `json:"wheelY,omitempty"`
	Unit    string  `json:"unit,omitempty"`
	Key     *uint16 `json:"key,omitempty"`
	WinVK   uint16  `json:"winVK,omitempty"`
	Down    bool    `json:"down,omitempty"`
	Tap     string  `json:"tap,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}
