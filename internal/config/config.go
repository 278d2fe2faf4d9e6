package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds everything a run needs, bound from the environment.
// Column names and the header row are configurable so differently shaped
// workbooks can be processed without code changes.
type Config struct {
	APIKey            string        `validate:"required"`
	InputFile         string        `validate:"required"`
	OutputFile        string        `validate:"required"`
	AddressColumn     string        `validate:"required"`
	PostalCodeColumn  string        `validate:"required"`
	CityColumn        string        `validate:"required"`
	HeaderRow         int           `validate:"gte=0"`
	OriginAddress     string        `validate:"required"`
	CountryHint       string
	BoundaryCountry   string
	ORSBaseURL        string        `validate:"required,url"`
	ORSProfile        string        `validate:"required"`
	RequestInterval   time.Duration `validate:"gte=0"`
	GeocodeTimeout    time.Duration `validate:"gt=0"`
	DirectionsTimeout time.Duration `validate:"gt=0"`
	LogLevel          string
}

var validate = validator.New()

// Load binds the configuration from environment variables, applying the
// documented defaults. Values are not validated here: sheettool runs without
// an API key, so each entrypoint decides how strict to be via Validate.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("INPUT_FILE", "addresses.xlsx")
	v.SetDefault("OUTPUT_FILE", "addresses_with_distances.xlsx")
	v.SetDefault("ADDRESS_COLUMN", "Address")
	v.SetDefault("POSTAL_CODE_COLUMN", "PostalCode")
	v.SetDefault("CITY_COLUMN", "City")
	v.SetDefault("HEADER_ROW", 0)
	v.SetDefault("COUNTRY_HINT", "Switzerland")
	v.SetDefault("BOUNDARY_COUNTRY", "CH")
	v.SetDefault("ORS_BASE_URL", "https://api.openrouteservice.org")
	v.SetDefault("ORS_PROFILE", "driving-car")
	v.SetDefault("REQUEST_INTERVAL", 200*time.Millisecond)
	v.SetDefault("GEOCODE_TIMEOUT", 10*time.Second)
	v.SetDefault("DIRECTIONS_TIMEOUT", 15*time.Second)
	v.SetDefault("LOG_LEVEL", "info")

	return &Config{
		APIKey:            v.GetString("OPENROUTESERVICE_API_KEY"),
		InputFile:         v.GetString("INPUT_FILE"),
		OutputFile:        v.GetString("OUTPUT_FILE"),
		AddressColumn:     v.GetString("ADDRESS_COLUMN"),
		PostalCodeColumn:  v.GetString("POSTAL_CODE_COLUMN"),
		CityColumn:        v.GetString("CITY_COLUMN"),
		HeaderRow:         v.GetInt("HEADER_ROW"),
		OriginAddress:     v.GetString("ORIGIN_ADDRESS"),
		CountryHint:       v.GetString("COUNTRY_HINT"),
		BoundaryCountry:   v.GetString("BOUNDARY_COUNTRY"),
		ORSBaseURL:        v.GetString("ORS_BASE_URL"),
		ORSProfile:        v.GetString("ORS_PROFILE"),
		RequestInterval:   v.GetDuration("REQUEST_INTERVAL"),
		GeocodeTimeout:    v.GetDuration("GEOCODE_TIMEOUT"),
		DirectionsTimeout: v.GetDuration("DIRECTIONS_TIMEOUT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
	}
}

// Validate checks the configuration for an annotation run. The two values a
// run cannot proceed without get specific messages; the rest is covered by
// struct tags.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("OPENROUTESERVICE_API_KEY is required")
	}
	if strings.TrimSpace(c.OriginAddress) == "" {
		return errors.New("ORIGIN_ADDRESS is required")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
