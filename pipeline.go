// Package commutealert runs the commute alert pipeline: fetch trips for a
// configured route, extract disruption messages, judge their relevance with
// a language model and email the commuter when something matters.
package commutealert

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/theoremus-urban-solutions/commute-alert/config"
	"github.com/theoremus-urban-solutions/commute-alert/email"
	"github.com/theoremus-urban-solutions/commute-alert/journeyplanner"
	"github.com/theoremus-urban-solutions/commute-alert/relevance"
)

// Subject is the fixed subject line of every alert email.
const Subject = "Commute Alert for today"

// Pipeline wires the collaborators of one run. All fields are required.
type Pipeline struct {
	Journey  *journeyplanner.Client
	Strategy relevance.Strategy
	Sender   email.Sender
	Cfg      config.AppConfig
}

// Run executes the pipeline once, sequentially: resolve stops, fetch trips,
// extract messages, evaluate relevance, send the email. now must be the
// wall-clock time of this run; the relevance rules judge alert age against
// it. The run short-circuits without error when there are no messages or
// nothing is relevant. Any collaborator failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, now time.Time) error {
	commute := p.Cfg.Commute

	originID := commute.OriginID
	if originID == "" {
		log.Printf("Getting stop id for %s...", commute.OriginName)
		id, err := p.Journey.StopID(ctx, commute.OriginName)
		if err != nil {
			return err
		}
		originID = id
	}
	destID := commute.DestID
	if destID == "" {
		log.Printf("Getting stop id for %s...", commute.DestName)
		id, err := p.Journey.StopID(ctx, commute.DestName)
		if err != nil {
			return err
		}
		destID = id
	}

	log.Printf("Getting trips from journey-planner API...")
	trips, err := p.Journey.Trips(ctx, originID, destID)
	if err != nil {
		return err
	}

	messages := journeyplanner.ExtractMessages(trips)
	log.Printf("Found %d messages.", len(messages))
	if len(messages) == 0 {
		log.Printf("Commute unaffected. Terminating.")
		return nil
	}

	cc := relevance.Context{
		OriginName: commute.OriginName,
		DestName:   commute.DestName,
		ViaNames:   commute.ViaNames,
		Lines:      commute.Lines,
		UserName:   p.Cfg.Email.UserName,
		Now:        now,
	}
	summary, ok, err := p.Strategy.Evaluate(ctx, messages, cc)
	if err != nil {
		return fmt.Errorf("relevance evaluation: %w", err)
	}
	if !ok {
		log.Printf("No relevant issues found. Terminating.")
		return nil
	}
	log.Printf("Summary: %s", summary)

	log.Printf("Sending email...")
	err = p.Sender.Send(ctx, email.Message{
		Subject:          Subject,
		PlainText:        summary,
		SenderAddress:    p.Cfg.Email.SystemEmail,
		RecipientAddress: p.Cfg.Email.UserEmail,
		RecipientName:    p.Cfg.Email.UserName,
	})
	if err != nil {
		return err
	}
	log.Printf("Email sent. Terminating.")
	return nil
}
