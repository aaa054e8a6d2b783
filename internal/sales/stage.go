package sales

// Stage represents a deal's position in the sales pipeline
type Stage string

const (
	StageLead        Stage = "Lead"
	StageQualified   Stage = "Qualified"
	StageProposal    Stage = "Proposal"
	StageNegotiation Stage = "Negotiation"
	StageClosedWon   Stage = "Closed Won"
	StageClosedLost  Stage = "Closed Lost"
)

// Stages is the pipeline in progression order. Closed Won and Closed Lost
// are terminal.
var Stages = []Stage{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// stageOrdinals is the explicit ordering contract for stage arithmetic.
// Moving a deal forward or backward uses these ordinals, never the
// declaration order of Stages.
var stageOrdinals = map[Stage]int{
	StageLead:        0,
	StageQualified:   1,
	StageProposal:    2,
	StageNegotiation: 3,
	StageClosedWon:   4,
	StageClosedLost:  5,
}

// Ordinal returns the stage's position in the pipeline, or -1 for an
// unknown stage.
func (s Stage) Ordinal() int {
	ord, ok := stageOrdinals[s]
	if !ok {
		return -1
	}
	return ord
}

// Valid reports whether s is a known pipeline stage
func (s Stage) Valid() bool {
	_, ok := stageOrdinals[s]
	return ok
}

// Terminal reports whether the stage ends the pipeline (won or lost)
func (s Stage) Terminal() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// Next returns the stage one position forward, clamped at the last stage.
// An unknown stage is returned unchanged.
func (s Stage) Next() Stage {
	ord, ok := stageOrdinals[s]
	if !ok {
		return s
	}
	if ord+1 >= len(Stages) {
		return s
	}
	return Stages[ord+1]
}

// Prev returns the stage one position backward, clamped at the first stage.
// An unknown stage is returned unchanged.
func (s Stage) Prev() Stage {
	ord, ok := stageOrdinals[s]
	if !ok {
		return s
	}
	if ord-1 < 0 {
		return s
	}
	return Stages[ord-1]
}
