package input

// Key is a logical game key, decoupled from terminal key codes
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	keyCount
)

var keyNames = [keyCount]string{"left", "right", "up", "down"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// Action is a discrete command triggered by a single key press
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionToggleCamera
	ActionToggleMute
)
