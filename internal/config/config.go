package config

import (
	infraconfig "github.com/jonesrussell/north-cloud/crime-risk/infrastructure/config"
)

// Default configuration values.
const (
	defaultServiceName = "crime-risk"
	defaultServicePort = 5000
	defaultVersion     = "0.1.0"

	defaultDataSource      = SourceFile
	defaultCrimeRatesPath  = "data/city_crime_rates.csv"
	defaultWeightsPath     = "data/risk_weights.csv"
	defaultCrimeRatesTable = "crime_rates"
	defaultWeightsTable    = "risk_weights"
	defaultRateMarker      = "lakh"
	defaultOrderColumn     = "id"

	defaultDBName = "crime_risk"
)

// Reference data sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds the application configuration.
type Config struct {
	Service  ServiceConfig             `yaml:"service"`
	Data     DataConfig                `yaml:"data"`
	Database DatabaseConfig            `yaml:"database"`
	Logging  infraconfig.LoggingConfig `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"PORT"      yaml:"port"`
	Debug   bool   `env:"APP_DEBUG" yaml:"debug"`
}

// DataConfig locates the reference tables.
type DataConfig struct {
	Source          string `env:"CRIME_RISK_DATA_SOURCE" yaml:"source"`
	CrimeRates      string `env:"CRIME_RISK_CRIME_RATES" yaml:"crime_rates"`
	Weights         string `env:"CRIME_RISK_WEIGHTS"     yaml:"weights"`
	CrimeRatesSheet string `yaml:"crime_rates_sheet"`
	WeightsSheet    string `yaml:"weights_sheet"`
	CrimeRatesTable string `yaml:"crime_rates_table"`
	WeightsTable    string `yaml:"weights_table"`
	OrderColumn     string `yaml:"order_column"`
	RateColumn      string `env:"CRIME_RISK_RATE_COLUMN" yaml:"rate_column"`
	// RateMarker is a pointer so an explicit empty value can disable the
	// marker scan while an absent value takes the default.
	RateMarker *string `yaml:"rate_marker"`
}

// Marker returns the configured rate marker, or "" when disabled.
func (d *DataConfig) Marker() string {
	if d.RateMarker == nil {
		return defaultRateMarker
	}
	return *d.RateMarker
}

// DatabaseConfig holds PostgreSQL settings for the postgres data source.
type DatabaseConfig struct {
	Host     string `env:"POSTGRES_CRIME_RISK_HOST"     yaml:"host"`
	Port     int    `env:"POSTGRES_CRIME_RISK_PORT"     yaml:"port"`
	User     string `env:"POSTGRES_CRIME_RISK_USER"     yaml:"user"`
	Password string `env:"POSTGRES_CRIME_RISK_PASSWORD" yaml:"password"`
	Database string `env:"POSTGRES_CRIME_RISK_DB"       yaml:"database"`
	SSLMode  string `env:"POSTGRES_CRIME_RISK_SSLMODE"  yaml:"sslmode"`
}

// Connection converts to the shared connection settings.
func (d *DatabaseConfig) Connection() *infraconfig.DatabaseConfig {
	return &infraconfig.DatabaseConfig{
		Host:     d.Host,
		Port:     d.Port,
		User:     d.User,
		Password: d.Password,
		Database: d.Database,
		SSLMode:  d.SSLMode,
	}
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return infraconfig.LoadWithDefaults[Config](path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDataDefaults(&cfg.Data)
	setDatabaseDefaults(&cfg.Database)
	cfg.Logging.SetDefaults()
}

func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
}

func setDataDefaults(data *DataConfig) {
	if data.Source == "" {
		data.Source = defaultDataSource
	}
	if data.CrimeRates == "" {
		data.CrimeRates = defaultCrimeRatesPath
	}
	if data.Weights == "" {
		data.Weights = defaultWeightsPath
	}
	if data.CrimeRatesTable == "" {
		data.CrimeRatesTable = defaultCrimeRatesTable
	}
	if data.WeightsTable == "" {
		data.WeightsTable = defaultWeightsTable
	}
	if data.OrderColumn == "" {
		data.OrderColumn = defaultOrderColumn
	}
}

func setDatabaseDefaults(db *DatabaseConfig) {
	conn := db.Connection()
	conn.SetDefaults()
	db.Host, db.Port, db.User, db.SSLMode = conn.Host, conn.Port, conn.User, conn.SSLMode
	if db.Database == "" {
		db.Database = defaultDBName
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := infraconfig.ValidatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

func (c *Config) validateData() error {
	if err := infraconfig.ValidateOneOf("data.source", c.Data.Source, SourceFile, SourcePostgres); err != nil {
		return err
	}

	if c.Data.Source == SourcePostgres {
		if err := infraconfig.ValidateRequired("data.crime_rates_table", c.Data.CrimeRatesTable); err != nil {
			return err
		}
		if err := infraconfig.ValidateRequired("data.weights_table", c.Data.WeightsTable); err != nil {
			return err
		}
		return c.Database.Connection().Validate()
	}

	if err := infraconfig.ValidateRequired("data.crime_rates", c.Data.CrimeRates); err != nil {
		return err
	}
	return infraconfig.ValidateRequired("data.weights", c.Data.Weights)
}
