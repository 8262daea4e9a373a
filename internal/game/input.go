package game

// Input is the held-key state sampled once per frame (w, s, a, d).
type Input struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Moving reports whether a translation key is held.
func (in Input) Moving() bool {
	return in.Forward || in.Backward
}
