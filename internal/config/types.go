package config

// Config holds all configuration for the application.
type Config struct {
	Port          string
	DBName        string
	MigrationsDir string
	Sheets        SheetsConfig
	Stripe        StripeConfig
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
}

// SheetsConfig identifies the spreadsheet acting as the system of record.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
