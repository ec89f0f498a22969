package domain

// StatusMode classifies a status update.
type StatusMode int

const (
	// ModeEphemeral marks frequent progress ticks; rendering is throttled.
	ModeEphemeral StatusMode = iota
	// ModeImportant marks one-off milestones; rendering is immediate.
	ModeImportant
)

// String returns a human-readable representation of the mode.
func (m StatusMode) String() string {
	switch m {
	case ModeEphemeral:
		return "ephemeral"
	case ModeImportant:
		return "important"
	default:
		return "unknown"
	}
}

// Phase is the position of a session in its state machine.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseActiveCycle
	PhaseFetch
	PhaseMarkHistory
	PhaseRecordEngagement
	PhaseStart
	PhaseHeartbeat
	PhaseEnd
	PhasePostCycleCheck
	PhaseDailyExhausted
	PhaseWaitWindow
	PhaseCredentialRefresh
	PhaseReset
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseInitializing:      "Initializing",
	PhaseActiveCycle:       "ActiveCycle",
	PhaseFetch:             "Fetch",
	PhaseMarkHistory:       "MarkHistory",
	PhaseRecordEngagement:  "RecordEngagement",
	PhaseStart:             "Start",
	PhaseHeartbeat:         "Heartbeat",
	PhaseEnd:               "End",
	PhasePostCycleCheck:    "PostCycleCheck",
	PhaseDailyExhausted:    "DailyExhausted",
	PhaseWaitWindow:        "WaitWindow",
	PhaseCredentialRefresh: "CredentialRefresh",
	PhaseReset:             "Reset",
	PhaseFailed:            "Failed",
}

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}
