package editor

// Mode is whether the editor shows the raw buffer or its rendering.
type Mode int

const (
	Write Mode = iota
	Preview
)

func (m Mode) Toggle() Mode {
	if m == Write {
		return Preview
	}
	return Write
}

func (m Mode) String() string {
	if m == Preview {
		return "Preview"
	}
	return "Write"
}
