package relevance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/commute-alert/llm"
)

const classifySystemPrompt = `You are classifying public transport alerts based on their relevance to the
user's commute. Use the following rules to determine if an alert is relevant:
1. If the alert affects a stop that the user is using, it is relevant.
2. If the alert affects a stop that the user is using, but the user is not using the line that the alert is for, it is not relevant.
3. If the alert affects a stop that the user is not using, it is not relevant.
4. If the alert affects a line that the user is not using, it is not relevant.
5. If the alert affects a stop on the line that is neither origin nor destination but the user is going directly without transfers, it is not relevant.
6. If the alert is about a situation that began longer than a week ago, it is not relevant.
Consider the current date. Today is %s.
Respond as a list of JSON objects with properties: id (int), relevant (bool), reason (str).

ALERTS:
%s`

// Judgement is the model's verdict on one alert, addressed by the alert's
// position in the input list.
type Judgement struct {
	ID       int    `json:"id"`
	Relevant bool   `json:"relevant"`
	Reason   string `json:"reason"`
}

// Classify judges every message against the relevance rules in a single
// chat call and returns the judgements plus the relevant messages in input
// order.
//
// The model is asked for one verdict per message, keyed by index. Verdicts
// with out-of-range ids are dropped, on a duplicate id the first verdict
// wins, and a message the model never mentions counts as not relevant. A
// truncated verdict list for very large inputs therefore silently drops the
// tail; that approximation is accepted rather than retried.
func Classify(ctx context.Context, chat llm.Chat, messages []string, cc Context) ([]Judgement, []string, error) {
	numbered := make([]string, len(messages))
	for i, m := range messages {
		numbered[i] = fmt.Sprintf("%d: %s", i, m)
	}
	system := fmt.Sprintf(classifySystemPrompt, cc.dateLine(), strings.Join(numbered, "\n"))

	out, err := chat.Complete(ctx, system, cc.journeyDescription())
	if err != nil {
		return nil, nil, err
	}

	var judgements []Judgement
	if err := json.Unmarshal([]byte(stripCodeFence(out)), &judgements); err != nil {
		return nil, nil, fmt.Errorf("classifier returned non-JSON verdicts: %w", err)
	}

	relevant := make([]bool, len(messages))
	seen := make([]bool, len(messages))
	kept := judgements[:0]
	for _, j := range judgements {
		if j.ID < 0 || j.ID >= len(messages) || seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		relevant[j.ID] = j.Relevant
		kept = append(kept, j)
	}

	var subset []string
	for i, m := range messages {
		if relevant[i] {
			subset = append(subset, m)
		}
	}
	return kept, subset, nil
}

// stripCodeFence removes a surrounding Markdown code fence, which some
// models wrap around JSON output despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
