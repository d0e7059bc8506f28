package sim

// inputSnapshot holds one poll of every input, taken at the start of an update.
type inputSnapshot [InputCount]bool

func (s *Sim) pollInputs() inputSnapshot {
	var in inputSnapshot
	for i := range InputCount {
		in[i] = s.host.InputPressed(i)
	}
	return in
}

// Update advances the simulation by one step. It is a no-op once the game
// is over. Inputs are polled exactly once; the step then applies horizontal
// movement, rotation and gravity in that order.
func (s *Sim) Update() {
	if s.closed || s.state == StateGameOver {
		return
	}
	in := s.pollInputs()

	dx := 0
	if in[InputMoveLeft] {
		dx--
	}
	if in[InputMoveRight] {
		dx++
	}
	if dx != 0 {
		s.tryMove(dx, 0)
	}

	dr := 0
	if in[InputRotateLeft] {
		dr--
	}
	if in[InputRotateRight] {
		dr++
	}
	if dr != 0 {
		s.tryRotate(dr)
	}

	s.applyGravity(in[InputFastFall])
}
