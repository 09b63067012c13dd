// Package journeyplanner is a client for the journey-planner HTTP API.
//
// The API returns deeply nested JSON: a trip list whose trips carry one or
// more legs, each leg optionally carrying a list of free-text disruption
// messages. Two quirks of the wire format are normalized at ingestion:
//   - a trip's "Leg" field may be a single object or an array of objects,
//   - message texts are wrapped as {"$": "..."}.
//
// ExtractMessages walks the decoded trip list and returns the disruption
// message texts as an ordered, duplicate-free sequence.
package journeyplanner
