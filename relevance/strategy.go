package relevance

import (
	"context"
	"log"

	"github.com/theoremus-urban-solutions/commute-alert/llm"
)

// Strategy evaluates extracted disruption messages against a commute and
// produces the alert summary. ok is false when nothing is relevant; the
// caller must then send no email.
type Strategy interface {
	Evaluate(ctx context.Context, messages []string, cc Context) (summary string, ok bool, err error)
}

// TwoStage classifies every message first and summarizes only the relevant
// subset, spending two chat calls. Classification failures abort the run;
// an empty relevant subset short-circuits before the second call.
type TwoStage struct {
	Chat llm.Chat
}

func (s TwoStage) Evaluate(ctx context.Context, messages []string, cc Context) (string, bool, error) {
	judgements, relevant, err := Classify(ctx, s.Chat, messages, cc)
	if err != nil {
		return "", false, err
	}
	log.Printf("Classified %d messages, %d relevant.", len(judgements), len(relevant))

	if len(relevant) == 0 {
		return "", false, nil
	}

	summary, err := Summarize(ctx, s.Chat, relevant, cc)
	if err != nil {
		return "", false, err
	}
	return summary, true, nil
}
