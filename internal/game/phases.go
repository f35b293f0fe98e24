package game

// phaseSpec is one row of the round state machine. Hooks mutate the working
// copy of the state the engine owns for the duration of a single Apply.
type phaseSpec struct {
	onBegin func(*GameState)
	onEnd   func(*GameState)

	first func(*GameState) int
	next  func(*GameState) int

	moves  []MoveKind
	stages map[Stage]MoveKind

	endIf func(*GameState) bool
	then  func(*GameState) Phase
}

// maxCascade bounds how many phase transitions a single move can trigger.
const maxCascade = 8

func (e *Engine) phase(p Phase) phaseSpec {
	switch p {
	case PhaseBidding:
		return phaseSpec{
			onBegin: e.beginBidding,
			onEnd:   e.endBidding,
			first:   firstBidder,
			next:    nextBidder,
			moves:   []MoveKind{MoveMakeBid},
			endIf:   biddingDone,
			then:    afterBidding,
		}
	case PhaseDiscard:
		return phaseSpec{
			onBegin: e.beginDiscard,
			onEnd:   e.endDiscard,
			first:   taker,
			next:    taker,
			moves:   []MoveKind{MoveSelectCards},
			stages: map[Stage]MoveKind{
				StageSelectTrump:  MoveSelectTrumpSuit,
				StageCallCard:     MoveCall,
				StageAnnounceTout: MoveAnnounceTout,
			},
			endIf: discardDone,
			then:  func(*GameState) Phase { return PhasePlacement },
		}
	case PhasePlacement:
		return phaseSpec{
			first: trickLeader,
			next:  nextSeat,
			moves: []MoveKind{MoveSelectCards, MoveGiveContra},
			endIf: trickFull,
			onEnd: e.endTrick,
			then:  afterTrick,
		}
	case PhaseRoundEnd:
		return phaseSpec{
			onBegin: func(s *GameState) { s.Stage = StageGetReady },
			onEnd:   e.endRound,
			first:   nobody,
			next:    nobody,
			stages:  map[Stage]MoveKind{StageGetReady: MoveFinish},
			endIf:   allReady,
			then:    func(*GameState) Phase { return PhaseBidding },
		}
	}
	violate("unknown phase %d", int(p))
	return phaseSpec{}
}

// allows reports whether kind may be played in the current phase and stage.
func (p phaseSpec) allows(stage Stage, kind MoveKind) bool {
	if k, ok := p.stages[stage]; ok && k == kind {
		return true
	}
	for _, k := range p.moves {
		if k == kind {
			return true
		}
	}
	return false
}

func allReady(s *GameState) bool {
	for _, p := range s.Players {
		if !p.IsReady {
			return false
		}
	}
	return true
}

// endRound collects the hands, passes the deal on and stops the game once the
// round limit is hit.
func (e *Engine) endRound(s *GameState) {
	for i := range s.Players {
		s.Players[i].Hand = nil
	}

	dealer := s.Dealer()
	next := (dealer + 1) % s.NumPlayers()
	s.Players[dealer].IsDealer = false
	s.Players[next].IsDealer = true

	if e.rules.MaxRounds > 0 && len(s.RoundSummaries) >= e.rules.MaxRounds {
		s.GameOver = true
		e.logger.Debug("Game over", "rounds", len(s.RoundSummaries))
	}
}

// enter switches to phase p and runs its entry hook.
func (e *Engine) enter(s *GameState, p Phase) {
	from := s.Phase
	s.Phase = p
	s.Stage = StageNone

	spec := e.phase(p)
	if spec.onBegin != nil {
		spec.onBegin(s)
	}
	s.CurrentPlayer = spec.first(s)

	e.logger.Debug("Phase transition",
		"from", from,
		"to", p,
		"stage", s.Stage,
		"current", s.CurrentPlayer)
}

// settle runs end conditions and the hooks they trigger until the state
// rests in a phase waiting for a move. turnEnded advances the turn when the
// phase is not left.
func (e *Engine) settle(s *GameState, turnEnded bool) {
	for range maxCascade {
		spec := e.phase(s.Phase)
		if !spec.endIf(s) {
			if turnEnded {
				s.CurrentPlayer = spec.next(s)
			}
			return
		}

		if spec.onEnd != nil {
			spec.onEnd(s)
		}
		if s.GameOver {
			s.Stage = StageNone
			s.CurrentPlayer = NoPlayer
			return
		}
		e.enter(s, spec.then(s))
		turnEnded = false
	}
	violate("phase cascade did not settle after %d transitions", maxCascade)
}
