package config

import "fmt"

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired fails when value is empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidatePort fails unless port is within 1..65535.
func ValidatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{Field: field, Message: "must be between 1 and 65535"}
	}
	return nil
}

// ValidateOneOf fails unless value is one of allowed.
func ValidateOneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{Field: field, Message: fmt.Sprintf("must be one of: %v", allowed)}
}

// Validate checks the connection settings needed to open a database.
func (c *DatabaseConfig) Validate() error {
	if err := ValidateRequired("database.host", c.Host); err != nil {
		return err
	}
	if err := ValidatePort("database.port", c.Port); err != nil {
		return err
	}
	if err := ValidateRequired("database.user", c.User); err != nil {
		return err
	}
	return ValidateRequired("database.database", c.Database)
}

// Validate checks level and format.
func (c *LoggingConfig) Validate() error {
	if err := ValidateOneOf("logging.level", c.Level, "debug", "info", "warn", "warning", "error", "fatal"); err != nil {
		return err
	}
	return ValidateOneOf("logging.format", c.Format, "json", "console")
}
