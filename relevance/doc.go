// Package relevance decides whether disruption messages matter for a
// configured commute and turns the relevant ones into an email-ready
// summary, using chat-completion calls.
//
// Two strategies implement the same Strategy interface:
//
//   - TwoStage first classifies every message against the relevance rules
//     (one chat call returning a JSON verdict per message), then summarizes
//     only the relevant subset (a second chat call). This is the default.
//   - SingleShot hands all raw messages to the model in one call together
//     with the restated rules and four worked examples, and relies on the
//     model to answer with either a summary or the literal sentinel "N/A".
//
// The rule set, injected with the current weekday and date so that recency
// can be judged against real time, is the functional contract of this
// package: an alert is relevant only if it hits a stop or line the commuter
// actually uses and describes a situation that began within the last week.
package relevance
