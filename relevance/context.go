package relevance

import (
	"fmt"
	"strings"
	"time"
)

// Context describes one commute for a single run. It is supplied once and
// never mutated. Now must be the wall-clock time of the run itself, not a
// cached value: the week-old cutoff in the rules is judged against it.
type Context struct {
	OriginName string
	DestName   string
	ViaNames   []string
	Lines      []string
	UserName   string
	Now        time.Time
}

// journeyDescription renders the commute as the user turn of every chat
// call: origin, destination, via stops or "directly", and the usual lines.
func (c Context) journeyDescription() string {
	var b strings.Builder
	fmt.Fprintf(&b, "I am going from %s to %s.", c.OriginName, c.DestName)
	if len(c.ViaNames) > 0 {
		fmt.Fprintf(&b, " I am going via %s.", strings.Join(c.ViaNames, ", "))
	} else {
		b.WriteString(" I am going directly.")
	}
	fmt.Fprintf(&b, " I am usually using these lines: %s.", strings.Join(c.Lines, ", "))
	return b.String()
}

// dateLine renders today for prompt injection, e.g. "Monday, 2026-08-31".
func (c Context) dateLine() string {
	return fmt.Sprintf("%s, %s", c.Now.Weekday(), c.Now.Format("2006-01-02"))
}
