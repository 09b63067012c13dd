package config

// Strategy names for the relevance stage.
const (
	StrategyTwoStage   = "two_stage"
	StrategySingleShot = "single_shot"
)

// CommuteConfig describes the monitored route. The stop-id pair is
// optional; unset ids are resolved from the names at run time.
type CommuteConfig struct {
	OriginID   string   `yaml:"originId"`
	DestID     string   `yaml:"destId"`
	OriginName string   `yaml:"originName" validate:"required"`
	DestName   string   `yaml:"destName" validate:"required"`
	ViaNames   []string `yaml:"viaNames"`
	Lines      []string `yaml:"lines" validate:"required,min=1"`
}

// JourneyPlannerConfig contains the journey-planner API endpoint.
type JourneyPlannerConfig struct {
	BaseURI string `yaml:"baseURI" validate:"required,url"`
}

// ModelConfig contains the chat-model endpoint and secret names.
type ModelConfig struct {
	Endpoint       string `yaml:"endpoint" validate:"required,url"`
	KeySecretName  string `yaml:"keySecretName" validate:"required"`
	DeploymentName string `yaml:"deploymentName" validate:"required"`
}

// EmailConfig contains addresses and the SMTP secret name.
type EmailConfig struct {
	ConnStrSecretName string `yaml:"connStrSecretName" validate:"required"`
	UserEmail         string `yaml:"userEmail" validate:"required,email"`
	UserName          string `yaml:"userName" validate:"required"`
	SystemEmail       string `yaml:"systemEmail" validate:"required,email"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Commute        CommuteConfig        `yaml:"commute" validate:"required"`
	JourneyPlanner JourneyPlannerConfig `yaml:"journeyplanner" validate:"required"`
	KeyVaultURI    string               `yaml:"keyvaultURI" validate:"omitempty,url"`
	Model          ModelConfig          `yaml:"model" validate:"required"`
	Email          EmailConfig          `yaml:"email" validate:"required"`
	Strategy       string               `yaml:"strategy" validate:"omitempty,oneof=two_stage single_shot"`
}
