package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from commute.yml
func LoadAppConfig() error {
	paths := []string{"commute.yml", "./config/commute.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if err := validate(&cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

// LoadFromEnv populates the configuration from the enumerated environment
// variables. This is the scheduled (platform-managed) flavor; the variable
// names match what the hosting platform provisions.
func LoadFromEnv() error {
	cfg := AppConfig{
		Commute: CommuteConfig{
			OriginID:   os.Getenv("ORIGIN_ID"),
			DestID:     os.Getenv("DEST_ID"),
			OriginName: os.Getenv("ORIGIN_NAME"),
			DestName:   os.Getenv("DEST_NAME"),
			ViaNames:   splitList(os.Getenv("VIA_NAMES")),
			Lines:      splitList(os.Getenv("LINES")),
		},
		JourneyPlanner: JourneyPlannerConfig{
			BaseURI: os.Getenv("JOURNEYPLANNER_BASE_URI"),
		},
		KeyVaultURI: os.Getenv("KEYVAULT_URI"),
		Model: ModelConfig{
			Endpoint:       os.Getenv("AOAI_URI"),
			KeySecretName:  os.Getenv("AOAI_KEY_NAME"),
			DeploymentName: os.Getenv("AOAI_DEPLOYMENT_NAME"),
		},
		Email: EmailConfig{
			ConnStrSecretName: os.Getenv("SMTP_CONN_STR_NAME"),
			UserEmail:         os.Getenv("USER_EMAIL"),
			UserName:          os.Getenv("USER_NAME"),
			SystemEmail:       os.Getenv("SYSTEM_EMAIL"),
		},
		Strategy: os.Getenv("STRATEGY"),
	}
	if err := validate(&cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func validate(cfg *AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyTwoStage
	}
	return nil
}

// splitList parses a comma-separated environment value into its entries,
// dropping empty ones.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
