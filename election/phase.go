package election

import "errors"

// ErrInvalidTransition is returned when a process is asked to move to a
// phase that is not the next one in sequence (or cancel from a terminal phase).
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the lifecycle phase of an election process.
type Phase string

const (
	PhaseDraft        Phase = "draft"
	PhaseRegistration Phase = "registration"
	PhaseCampaign     Phase = "campaign"
	PhaseVoting       Phase = "voting"
	PhaseClosed       Phase = "closed"
	PhaseCancelled    Phase = "cancelled"
)

// phaseSequence is the one-directional order of a process lifecycle.
// Cancellation is handled separately and is not part of the sequence.
var phaseSequence = []Phase{
	PhaseDraft,
	PhaseRegistration,
	PhaseCampaign,
	PhaseVoting,
	PhaseClosed,
}

func (p Phase) Valid() bool {
	if p == PhaseCancelled {
		return true
	}
	for _, s := range phaseSequence {
		if p == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == PhaseClosed || p == PhaseCancelled
}

// Next returns the phase that follows p in the lifecycle sequence.
// ok is false when p is terminal or unknown.
func (p Phase) Next() (Phase, bool) {
	for i, s := range phaseSequence {
		if p == s && i+1 < len(phaseSequence) {
			return phaseSequence[i+1], true
		}
	}
	return "", false
}

// CanTransition validates a requested phase change: either the next phase
// in sequence (no skipping) or a cancel from any non-terminal phase.
func CanTransition(from, to Phase) bool {
	if to == PhaseCancelled {
		return !from.Terminal()
	}
	next, ok := from.Next()
	return ok && next == to
}

// ValidateTransition is CanTransition with an error instead of a bool.
func ValidateTransition(from, to Phase) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
