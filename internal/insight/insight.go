package insight

//go:generate mockgen -source=insight.go -destination=../mocks/insight_mocks.go -package=mocks

import (
	"context"

	"salesflow-backend/internal/sales"
)

// Fallback strings returned to clients when no analysis can be produced.
// Insight failures never propagate as errors.
const (
	FallbackPipeline   = "Unable to generate insights at this time. Please try again later."
	FallbackNextAction = "Contact customer for update."
)

// Generator produces short natural-language commentary on the pipeline
type Generator interface {
	// SummarizePipeline writes an executive summary of the active pipeline
	SummarizePipeline(ctx context.Context, deals []sales.Deal, reps []sales.SalesRep) (string, error)

	// SuggestNextAction proposes one next step for a single deal
	SuggestNextAction(ctx context.Context, deal sales.Deal) (string, error)
}
