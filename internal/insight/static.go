package insight

import (
	"context"
	"fmt"

	"salesflow-backend/internal/sales"
)

// Static produces deterministic commentary from the pipeline numbers
// alone. It serves deployments without a Gemini API key.
type Static struct{}

var _ Generator = (*Static)(nil)

// NewStatic creates the offline insight generator
func NewStatic() *Static {
	return &Static{}
}

// SummarizePipeline reports active pipeline totals and flags stuck deals
func (s *Static) SummarizePipeline(ctx context.Context, deals []sales.Deal, reps []sales.SalesRep) (string, error) {
	var totalPipeline float64
	active := 0
	stuck := 0
	for _, d := range deals {
		if !d.Active() {
			continue
		}
		active++
		totalPipeline += d.Value
		if d.Probability < stuckProbability && d.Value > stuckValueFloor {
			stuck++
		}
	}

	summary := fmt.Sprintf(
		"**Pipeline snapshot**\n\n%d active deals worth %s across %d reps.",
		active, sales.FormatINR(totalPipeline), len(reps),
	)
	if stuck > 0 {
		summary += fmt.Sprintf(
			"\n\n**Risk**: %d high-value deals sit below %d%% probability; review them first.",
			stuck, stuckProbability,
		)
	}
	return summary, nil
}

// SuggestNextAction proposes a stage-appropriate next step
func (s *Static) SuggestNextAction(ctx context.Context, deal sales.Deal) (string, error) {
	switch deal.Stage {
	case sales.StageLead:
		return "Qualify the opportunity with a discovery call to " + deal.CustomerName + ".", nil
	case sales.StageQualified:
		return "Prepare and share a proposal with " + deal.CustomerName + ".", nil
	case sales.StageProposal:
		return "Follow up on the submitted proposal and schedule a walkthrough.", nil
	case sales.StageNegotiation:
		return "Align on commercial terms and push for a signature date.", nil
	default:
		return "Review the closed deal for expansion opportunities.", nil
	}
}
