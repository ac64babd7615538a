package event

// SpawnTimerPayload describes one spawn timer completion
type SpawnTimerPayload struct {
	// Total is the number of completions since startup, including this one
	Total int64
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}

// CameraOrbitPayload carries the new camera orbit state
type CameraOrbitPayload struct {
	Enabled bool
}

// AudioMutePayload carries the new mute state
type AudioMutePayload struct {
	Muted bool
}
