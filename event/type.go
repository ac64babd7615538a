package event

// EventType identifies a game event
type EventType uint8

const (
	// EventSpawnTimerFired is pushed once per completed spawn timer period
	// Payload: *SpawnTimerPayload
	EventSpawnTimerFired EventType = iota + 1

	// EventPauseToggled is pushed when the game clock pauses or resumes
	// Payload: *PausePayload
	EventPauseToggled

	// EventCameraOrbitToggled is pushed when the camera rig is switched on or off
	// Payload: *CameraOrbitPayload
	EventCameraOrbitToggled

	// EventAudioMuteToggled is pushed when cue playback is muted or unmuted
	// Payload: *AudioMutePayload
	EventAudioMuteToggled
)

var eventNames = map[EventType]string{
	EventSpawnTimerFired:    "SpawnTimerFired",
	EventPauseToggled:       "PauseToggled",
	EventCameraOrbitToggled: "CameraOrbitToggled",
	EventAudioMuteToggled:   "AudioMuteToggled",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event stamped with the frame it was pushed in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
