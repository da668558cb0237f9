package config

import (
	"errors"
	"fmt"
)

var ErrMissingEnv = errors.New("missing required env")

// RequireDB reports which connection settings are absent for the configured driver.
func (c *Config) RequireDB() error {
	if c.DB.URL != "" {
		return nil
	}
	if c.DB.Driver == DriverSQLite {
		return NonEmpty(c.DB.Name, "DB_NAME")
	}
	if err := NonEmpty(c.DB.User, "DB_USER"); err != nil {
		return err
	}
	return NonEmpty(c.DB.Name, "DB_NAME")
}

func NonEmpty(value, envName string) error {
	if value == "" {
		return fmt.Errorf("%w %s", ErrMissingEnv, envName)
	}
	return nil
}
