// Package config loads lvshape settings from the environment.
//
// Variables (an optional .env file in the working directory is read first;
// real environment values take precedence):
//
//	LVSHAPE_PRINT_SYMBOL  rendering symbol of new registries   (default "#")
//	LVSHAPE_LOG_LEVEL     debug | info | warn | error          (default "info")
//	LVSHAPE_FAREWELL      print "Bye rectangle..." on Close    (default true)
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvshape/rectangle"
)

// Defaults applied to unset variables.
const (
	DefaultPrintSymbol = rectangle.DefaultPrintSymbol
	DefaultLogLevel    = "info"
	DefaultFarewell    = true
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the resolved configuration.
type Config struct {
	PrintSymbol string `env:"LVSHAPE_PRINT_SYMBOL"`
	LogLevel    string `env:"LVSHAPE_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Farewell    *bool  `env:"LVSHAPE_FAREWELL"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	return FromEnviron(os.Environ())
}

// FromEnviron resolves a Config from KEY=VALUE pairs, applies defaults and
// validates the result.
func FromEnviron(environ []string) (Config, error) {
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var c Config
	if err := env.Unmarshal(es, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.applyDefaults()

	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.PrintSymbol == "" {
		c.PrintSymbol = DefaultPrintSymbol
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Farewell == nil {
		v := DefaultFarewell
		c.Farewell = &v
	}
}

// FarewellEnabled reports whether Close should print the farewell.
func (c Config) FarewellEnabled() bool {
	return c.Farewell == nil || *c.Farewell
}

// RegistryOptions maps the configuration onto rectangle registry options.
// Farewells go to stdout unless disabled.
func (c Config) RegistryOptions(stdout io.Writer, logger *slog.Logger) []rectangle.Option {
	notifier := stdout
	if !c.FarewellEnabled() {
		notifier = io.Discard
	}

	return []rectangle.Option{
		rectangle.WithPrintSymbol(c.PrintSymbol),
		rectangle.WithNotifier(notifier),
		rectangle.WithLogger(logger),
	}
}
