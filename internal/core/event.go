package core

// Event describes something a game wants the shell to act on after a tick.
// Fields are independent: an event may carry any combination of a point
// delta for the shared profile, an achievement toast, a sound cue, and
// share text. Games never touch the profile directly; the shell applies
// deltas in the order events were emitted.
type Event struct {
	Points  int    // Point delta to award (>= 0)
	Message string // Achievement toast text, empty for none
	Sound   string // Sound cue name ("flip", "match", ...), empty for none
	Share   string // Text to hand to the host share capability, empty for none
}

// PointsEvent returns an event awarding points with an achievement toast.
func PointsEvent(points int, message string) Event {
	return Event{Points: points, Message: message}
}

// SoundEvent returns an event carrying only a sound cue.
func SoundEvent(name string) Event {
	return Event{Sound: name}
}
