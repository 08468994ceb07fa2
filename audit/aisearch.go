package audit

import (
	"context"
	"encoding/json"
	"math"

	"github.com/kimmoihanus/geoaudit"
)

// AISearchScore delegates comprehensive scoring to the text generation
// collaborator with a structured JSON response. No local computation is
// attempted: when the collaborator is unavailable or fails, a fixed
// default is returned.
func (a *Auditor) AISearchScore(ctx context.Context, input geoaudit.AISearchInput) *geoaudit.AISearchResult {
	if a.Generator == nil {
		return &geoaudit.AISearchResult{
			Score:     defaultScore,
			Reasoning: "AI scoring unavailable - using rule-based score",
		}
	}

	text, err := a.Generator.Generate(ctx, aiSearchPrompt(input), "", geoaudit.GenerateOptions{
		Temperature:     0.3,
		MaxOutputTokens: 300,
		ResponseSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":     map[string]any{"type": "number"},
				"reasoning": map[string]any{"type": "string"},
			},
			"required": []string{"score", "reasoning"},
		},
	})
	if err != nil {
		if geoaudit.ErrorCode(err) == geoaudit.EUNAVAILABLE {
			return &geoaudit.AISearchResult{
				Score:     defaultScore,
				Reasoning: "AI scoring unavailable - using rule-based score",
			}
		}
		a.logger().Error("AI search scoring failed", "error", err)
		return &geoaudit.AISearchResult{
			Score:     defaultScore,
			Reasoning: "AI scoring failed - using default",
		}
	}

	var parsed struct {
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		a.logger().Error("AI search scoring returned malformed JSON", "error", err)
		return &geoaudit.AISearchResult{
			Score:     defaultScore,
			Reasoning: "AI scoring failed - using default",
		}
	}

	reasoning := parsed.Reasoning
	if reasoning == "" {
		reasoning = "No reasoning provided"
	}
	return &geoaudit.AISearchResult{
		Score:     geoaudit.ClampScore(int(math.Round(parsed.Score))),
		Reasoning: reasoning,
	}
}
