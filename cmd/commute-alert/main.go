package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	lib "github.com/theoremus-urban-solutions/commute-alert"
	"github.com/theoremus-urban-solutions/commute-alert/config"
	"github.com/theoremus-urban-solutions/commute-alert/email"
	"github.com/theoremus-urban-solutions/commute-alert/journeyplanner"
	"github.com/theoremus-urban-solutions/commute-alert/llm"
	"github.com/theoremus-urban-solutions/commute-alert/relevance"
	"github.com/theoremus-urban-solutions/commute-alert/secret"
)

// weekday mornings at 06:00, matching the production trigger
const schedule = "0 6 * * 1-5"

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|schedule")
	envFile := flag.String("env", "", "optional .env file to load before reading configuration")
	fromEnv := flag.Bool("from-env", false, "load configuration from environment variables instead of commute.yml")
	flag.Parse()

	lib.InitLogging()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("cannot load %s: %v", *envFile, err)
		}
	}

	log.Printf("Loading configuration...")
	var err error
	if *fromEnv {
		err = config.LoadFromEnv()
	} else {
		err = config.LoadAppConfig()
	}
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	pipeline, err := buildPipeline(context.Background(), config.Config)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	switch *mode {
	case "oneshot":
		if err := pipeline.Run(context.Background(), time.Now()); err != nil {
			log.Fatalf("run: %v", err)
		}
	case "schedule":
		c := cron.New()
		_, err := c.AddFunc(schedule, func() {
			log.Printf("Triggered by timer.")
			if err := pipeline.Run(context.Background(), time.Now()); err != nil {
				log.Printf("run failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("schedule: %v", err)
		}
		log.Printf("Scheduler started (%s).", schedule)
		c.Run()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// buildPipeline resolves secrets and constructs the collaborators. The
// secret provider is Key Vault when a vault URI is configured, otherwise
// the environment.
func buildPipeline(ctx context.Context, cfg config.AppConfig) (*lib.Pipeline, error) {
	var secrets secret.Provider
	if cfg.KeyVaultURI != "" {
		log.Printf("Getting secrets from Key Vault...")
		kv, err := secret.NewKeyVault(cfg.KeyVaultURI)
		if err != nil {
			return nil, err
		}
		secrets = kv
	} else {
		log.Printf("Getting secrets from environment...")
		secrets = secret.Env{}
	}

	modelKey, err := secrets.GetSecret(ctx, cfg.Model.KeySecretName)
	if err != nil {
		return nil, err
	}
	smtpConnStr, err := secrets.GetSecret(ctx, cfg.Email.ConnStrSecretName)
	if err != nil {
		return nil, err
	}

	chat := llm.NewOpenAIChat(cfg.Model.Endpoint, modelKey, cfg.Model.DeploymentName)
	var strategy relevance.Strategy
	if cfg.Strategy == config.StrategySingleShot {
		strategy = relevance.SingleShot{Chat: chat}
	} else {
		strategy = relevance.TwoStage{Chat: chat}
	}

	sender, err := email.NewSMTPSender(smtpConnStr)
	if err != nil {
		return nil, err
	}

	return &lib.Pipeline{
		Journey:  journeyplanner.NewClient(cfg.JourneyPlanner.BaseURI),
		Strategy: strategy,
		Sender:   sender,
		Cfg:      cfg,
	}, nil
}
