package parameter

import "time"

// SpawnTimerPeriod is the repeating spawn trigger period
const SpawnTimerPeriod = time.Second

// KeyHoldWindow is how long a key counts as held after its last press or repeat event
// Terminals report presses and auto-repeats but no releases
const KeyHoldWindow = 150 * time.Millisecond
