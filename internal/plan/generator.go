package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitlife/internal/foodpolicy"
	"fitlife/internal/models"
	"fitlife/pkg/logger"
)

// ModelInvoker is the external model collaborator. One message per
// session; the generator never reuses a session across calls.
type ModelInvoker interface {
	Send(ctx context.Context, sessionID, systemPrompt, userPrompt string) (string, error)
}

// outcome tags which fallback tier a generation ended on.
type outcome int

const (
	outcomeGenerated outcome = iota
	outcomeRawFallback
	outcomeDefaultFallback
)

// Generator runs the full pipeline: build prompt, invoke the model, parse,
// render, validate, fall back. Generate is total: every failure mode is
// absorbed into one of the fallback tiers.
type Generator struct {
	invoker ModelInvoker
	policy  *foodpolicy.Policy
	timeout time.Duration
	log     *logger.Logger
}

func NewGenerator(invoker ModelInvoker, policy *foodpolicy.Policy, timeout time.Duration, log *logger.Logger) *Generator {
	return &Generator{
		invoker: invoker,
		policy:  policy,
		timeout: timeout,
		log:     log,
	}
}

// Generate returns the best available document for the given kind and
// profile. It never fails: the worst case is the static default plan.
func (g *Generator) Generate(ctx context.Context, kind Kind, profile *models.Profile) string {
	doc, _ := g.generate(ctx, kind, profile)
	return doc
}

func (g *Generator) generate(ctx context.Context, kind Kind, profile *models.Profile) (string, outcome) {
	var system, user string
	switch kind {
	case KindNutrition:
		system, user = buildNutritionPrompt(profile, g.policy)
	default:
		system, user = buildWorkoutPrompt(profile)
	}

	// Fresh session per call so concurrent or repeated generations never
	// share conversational state.
	sessionID := fmt.Sprintf("%s_%s_%s", kind, profile.UserID, uuid.NewString())

	invokeCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.invoker.Send(invokeCtx, sessionID, system, user)
	if err != nil {
		g.log.Warnw("model invocation failed, using default plan",
			"kind", kind, "user_id", profile.UserID, "error", err)
		return g.defaultDocument(kind, profile.FullName), outcomeDefaultFallback
	}

	if kind == KindNutrition {
		return g.finishNutrition(raw, profile)
	}
	return g.finishWorkout(raw, profile)
}

func (g *Generator) finishWorkout(raw string, profile *models.Profile) (string, outcome) {
	parsed, err := ParseWorkout(raw)
	if err != nil {
		g.log.Infow("workout response not structured, returning raw text",
			"user_id", profile.UserID, "error", err)
		return scrubEmphasis(raw), outcomeRawFallback
	}
	return RenderWorkout(profile.FullName, parsed), outcomeGenerated
}

func (g *Generator) finishNutrition(raw string, profile *models.Profile) (string, outcome) {
	parsed, err := ParseNutrition(raw)
	if err != nil {
		g.log.Infow("nutrition response not structured, returning raw text",
			"user_id", profile.UserID, "error", err)
		return scrubEmphasis(raw), outcomeRawFallback
	}

	doc := RenderNutrition(profile.FullName, parsed)

	// Final safety net: the model may ignore the prompt's food policy
	// instructions, so the rendered document is checked again here.
	if bad, terms := g.policy.IsForbidden(doc); bad {
		g.log.Warnw("nutrition plan rejected by food policy, using default plan",
			"user_id", profile.UserID, "forbidden_terms", terms)
		return DefaultNutrition(profile.FullName), outcomeDefaultFallback
	}

	return doc, outcomeGenerated
}

func (g *Generator) defaultDocument(kind Kind, name string) string {
	if kind == KindNutrition {
		return DefaultNutrition(name)
	}
	return DefaultWorkout(name)
}

var emphasisScrubber = strings.NewReplacer("*", "", "`", "", "#", "")

// scrubEmphasis strips markdown emphasis characters from raw model text
// before it is shown as-is.
func scrubEmphasis(s string) string {
	return strings.TrimSpace(emphasisScrubber.Replace(s))
}
