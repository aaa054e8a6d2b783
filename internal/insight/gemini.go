package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"salesflow-backend/internal/sales"

	"google.golang.org/genai"
)

// Value thresholds for highlighting deals in the pipeline prompt, in INR
const (
	highValueThreshold = 50 * sales.Lakh
	stuckValueFloor    = 20 * sales.Lakh
	stuckProbability   = 30
)

// Gemini generates insights through the Gemini API
type Gemini struct {
	client *genai.Client
	model  string
}

var _ Generator = (*Gemini)(nil)

// NewGemini creates a Gemini-backed insight generator
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// pipelineContext is the data snapshot embedded in the summary prompt
type pipelineContext struct {
	TotalPipelineValue string          `json:"totalPipelineValue"`
	DealCount          int             `json:"dealCount"`
	HighValueDeals     []highValueDeal `json:"highValueDeals"`
	StuckDeals         []stuckDeal     `json:"stuckDeals"`
	Reps               []string        `json:"reps"`
}

type highValueDeal struct {
	Client string `json:"client"`
	Value  string `json:"val"`
	Stage  string `json:"stage"`
}

type stuckDeal struct {
	Client      string `json:"client"`
	Value       string `json:"val"`
	Stage       string `json:"stage"`
	Probability int    `json:"probability"`
}

// SummarizePipeline writes an executive summary of the active pipeline
func (g *Gemini) SummarizePipeline(ctx context.Context, deals []sales.Deal, reps []sales.SalesRep) (string, error) {
	snapshot := buildPipelineContext(deals, reps)
	contextJSON, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pipeline context: %w", err)
	}

	prompt := fmt.Sprintf(`You are a senior Sales Operations Analyst for an Indian Tech Sales team. Analyze this sales pipeline data snapshot:
%s

Provide a concise executive summary with:
1. Overall health assessment (bullish/bearish).
2. Top 2 specific risks (e.g., stuck high-value deals).
3. One actionable recommendation for the sales manager to increase velocity.

Keep it professional, encouraging, and under 150 words. Format with simple markdown.`, contextJSON)

	return g.generate(ctx, prompt)
}

// SuggestNextAction proposes one next step for a single deal
func (g *Gemini) SuggestNextAction(ctx context.Context, deal sales.Deal) (string, error) {
	prompt := fmt.Sprintf(`Given this sales deal in an Indian context (Values in INR):
Customer: %s
Stage: %s
Value: %.0f INR
Probability: %d%%

Suggest one concrete "Next Best Action" for the sales rep to move this forward. Keep it one short sentence.`,
		deal.CustomerName, deal.Stage, deal.Value, deal.Probability)

	return g.generate(ctx, prompt)
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

// buildPipelineContext condenses the pipeline to the facts the prompt
// needs: totals, outsized deals, and deals that look stuck
func buildPipelineContext(deals []sales.Deal, reps []sales.SalesRep) pipelineContext {
	snapshot := pipelineContext{
		HighValueDeals: []highValueDeal{},
		StuckDeals:     []stuckDeal{},
	}

	var totalPipeline float64
	for _, d := range deals {
		if !d.Active() {
			continue
		}
		totalPipeline += d.Value
		snapshot.DealCount++

		if d.Value > highValueThreshold {
			snapshot.HighValueDeals = append(snapshot.HighValueDeals, highValueDeal{
				Client: d.CustomerName,
				Value:  sales.FormatINR(d.Value),
				Stage:  string(d.Stage),
			})
		}
		if d.Probability < stuckProbability && d.Value > stuckValueFloor {
			snapshot.StuckDeals = append(snapshot.StuckDeals, stuckDeal{
				Client:      d.CustomerName,
				Value:       sales.FormatINR(d.Value),
				Stage:       string(d.Stage),
				Probability: d.Probability,
			})
		}
	}
	snapshot.TotalPipelineValue = sales.FormatINR(totalPipeline)

	for _, r := range reps {
		snapshot.Reps = append(snapshot.Reps, r.Name)
	}
	return snapshot
}
