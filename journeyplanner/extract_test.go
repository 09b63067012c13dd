package journeyplanner

import (
	"slices"
	"testing"
)

func legWithMessages(texts ...string) Leg {
	msgs := make([]Message, len(texts))
	for i, txt := range texts {
		msgs[i] = Message{Text: TextWrapper{Value: txt}}
	}
	return Leg{MessageList: &MessageList{Messages: msgs}}
}

func TestExtractMessages_Dedup(t *testing.T) {
	trips := []Trip{
		{Legs: LegList{legWithMessages("line 1 delayed", "stop closed")}},
		{Legs: LegList{legWithMessages("line 1 delayed"), legWithMessages("stop closed", "line 4 rerouted")}},
		{Legs: LegList{legWithMessages("line 1 delayed")}},
	}

	got := ExtractMessages(trips)
	want := []string{"line 1 delayed", "stop closed", "line 4 rerouted"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractMessages_FirstOccurrenceOrder(t *testing.T) {
	trips := []Trip{
		{Legs: LegList{legWithMessages("b"), legWithMessages("a")}},
		{Legs: LegList{legWithMessages("a", "c", "b")}},
	}

	got := ExtractMessages(trips)
	want := []string{"b", "a", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("expected first-occurrence order %v, got %v", want, got)
	}
}

func TestExtractMessages_NoMessageLists(t *testing.T) {
	trips := []Trip{
		{Legs: LegList{{Name: "Bus 12"}, {Name: "Walk"}}},
		{Legs: LegList{{Name: "Train A"}}},
	}

	if got := ExtractMessages(trips); len(got) != 0 {
		t.Errorf("expected no messages, got %v", got)
	}
}

func TestExtractMessages_EmptyTripList(t *testing.T) {
	if got := ExtractMessages(nil); len(got) != 0 {
		t.Errorf("expected no messages for nil input, got %v", got)
	}
}

func TestExtractMessages_Idempotent(t *testing.T) {
	trips := []Trip{
		{Legs: LegList{legWithMessages("line 1 delayed", "stop closed", "line 1 delayed")}},
		{Legs: LegList{legWithMessages("line 4 rerouted")}},
	}

	first := ExtractMessages(trips)
	second := ExtractMessages(trips)
	if !slices.Equal(first, second) {
		t.Errorf("extraction not deterministic: %v vs %v", first, second)
	}
}
