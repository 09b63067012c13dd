package journeyplanner

import "slices"

// ExtractMessages walks a trip list and collects every disruption message
// text in order of first occurrence. Identity is exact text equality: a
// message repeated across legs or trips appears once, at the position where
// it was first seen. Texts are taken as-is, with no normalization.
func ExtractMessages(trips []Trip) []string {
	var messages []string
	for _, trip := range trips {
		for _, leg := range trip.Legs {
			if leg.MessageList == nil {
				continue
			}
			for _, m := range leg.MessageList.Messages {
				if !slices.Contains(messages, m.Text.Value) {
					messages = append(messages, m.Text.Value)
				}
			}
		}
	}
	return messages
}
