package relevance

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"
)

// stubChat returns canned completions and records the prompts it was given.
type stubChat struct {
	reply      string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubChat) Complete(_ context.Context, system, user string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	return s.reply, s.err
}

func testContext() Context {
	return Context{
		OriginName: "Brown Street",
		DestName:   "Central Station",
		ViaNames:   []string{"Madison Boulevard"},
		Lines:      []string{"1", "2", "4"},
		UserName:   "Alex",
		Now:        time.Date(2026, time.August, 31, 6, 0, 0, 0, time.UTC),
	}
}

func TestClassify_FiltersByVerdict(t *testing.T) {
	messages := []string{
		"Due to construction, the 1 will not stop at Brown Street. Use the 2 instead.",
		"Due to construction, the 3 will not stop at Brown Street.",
		"Due to construction, the 1 will not stop at Lilly Street.",
	}
	chat := &stubChat{reply: `[
		{"id": 0, "relevant": true, "reason": "affects a used stop and line"},
		{"id": 1, "relevant": false, "reason": "line 3 is not used"},
		{"id": 2, "relevant": false, "reason": "Lilly Street is not on the route"}
	]`}

	judgements, relevant, err := Classify(context.Background(), chat, messages, testContext())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(judgements) != 3 {
		t.Errorf("expected 3 judgements, got %d", len(judgements))
	}
	if !slices.Equal(relevant, messages[:1]) {
		t.Errorf("expected only the first message to be relevant, got %v", relevant)
	}
}

func TestClassify_PromptContents(t *testing.T) {
	messages := []string{"line 1 delayed", "line 9 cancelled"}
	chat := &stubChat{reply: `[]`}

	if _, _, err := Classify(context.Background(), chat, messages, testContext()); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	// The numbered alerts and the fresh date must be embedded in the system
	// prompt; the commute description goes into the user turn.
	for _, want := range []string{"0: line 1 delayed", "1: line 9 cancelled", "Monday, 2026-08-31", "longer than a week ago"} {
		if !strings.Contains(chat.lastSystem, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	for _, want := range []string{"Brown Street", "Central Station", "via Madison Boulevard", "1, 2, 4"} {
		if !strings.Contains(chat.lastUser, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestClassify_DirectJourneyDescription(t *testing.T) {
	cc := testContext()
	cc.ViaNames = nil
	chat := &stubChat{reply: `[]`}

	if _, _, err := Classify(context.Background(), chat, []string{"m"}, cc); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if !strings.Contains(chat.lastUser, "directly") {
		t.Errorf("user prompt should say the journey is direct, got %q", chat.lastUser)
	}
}

func TestClassify_OutOfRangeAndMissingIDs(t *testing.T) {
	messages := []string{"a", "b", "c"}
	// id 7 is out of range, id 1 is never judged, id 2 is judged twice with
	// conflicting verdicts.
	chat := &stubChat{reply: `[
		{"id": 7, "relevant": true, "reason": "bogus"},
		{"id": 0, "relevant": true, "reason": "ok"},
		{"id": 2, "relevant": false, "reason": "first verdict"},
		{"id": 2, "relevant": true, "reason": "second verdict"}
	]`}

	judgements, relevant, err := Classify(context.Background(), chat, messages, testContext())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(judgements) != 2 {
		t.Errorf("expected out-of-range and duplicate verdicts dropped, got %d kept", len(judgements))
	}
	// Unjudged and duplicate-conflicted messages count as not relevant.
	if !slices.Equal(relevant, []string{"a"}) {
		t.Errorf("expected only %q relevant, got %v", "a", relevant)
	}
}

func TestClassify_StripsCodeFence(t *testing.T) {
	chat := &stubChat{reply: "```json\n[{\"id\": 0, \"relevant\": true, \"reason\": \"r\"}]\n```"}

	_, relevant, err := Classify(context.Background(), chat, []string{"a"}, testContext())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(relevant) != 1 {
		t.Errorf("expected fenced JSON to parse, got %v", relevant)
	}
}

func TestClassify_NonJSONResponse(t *testing.T) {
	chat := &stubChat{reply: "I cannot classify these alerts."}

	if _, _, err := Classify(context.Background(), chat, []string{"a"}, testContext()); err == nil {
		t.Error("expected error for non-JSON verdicts")
	}
}
