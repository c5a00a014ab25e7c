package fileops

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/CodeMonkeyCybersecurity/helpers/pkg/helper_err"
)

// Strategy selects how a candidate path is claimed.
type Strategy string

const (
	// StrategyProbe checks existence and returns the first free path.
	// Two concurrent callers may receive the same path.
	StrategyProbe Strategy = "probe"
	// StrategyExclusive creates the returned path with O_CREATE|O_EXCL,
	// so no two callers can receive the same path.
	StrategyExclusive Strategy = "exclusive"
)

// TokenKind selects the random suffix generator.
type TokenKind string

const (
	TokenAlphanumeric TokenKind = "alphanumeric"
	TokenUUID         TokenKind = "uuid"
)

// ConfigKey is the viper key holding the resolver settings.
const ConfigKey = "filename"

// Config defines and validates the resolver settings.
type Config struct {
	Strategy    Strategy  `mapstructure:"strategy" validate:"required,oneof=probe exclusive"`
	TokenKind   TokenKind `mapstructure:"token_kind" validate:"required,oneof=alphanumeric uuid"`
	TokenLength int       `mapstructure:"token_length" validate:"min=1,max=32"`
	// MaxAttempts caps the number of candidates tried; 0 means unbounded.
	MaxAttempts int `mapstructure:"max_attempts" validate:"min=0"`
}

var validate = validator.New()

// DefaultConfig probes without a cap using 8 character alphanumeric tokens.
func DefaultConfig() Config {
	return Config{
		Strategy:    StrategyProbe,
		TokenKind:   TokenAlphanumeric,
		TokenLength: 8,
		MaxAttempts: 0,
	}
}

// Validate checks the config against its validate tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return helper_err.WrapInvalidArgument(helper_err.NewInvalidArgumentError("config", err.Error()))
	}
	return nil
}

// LoadConfig reads the "filename" section of a host application's viper
// instance over DefaultConfig. A nil viper yields the defaults.
//
//	filename:
//	  strategy: exclusive
//	  token_kind: uuid
//	  token_length: 12
//	  max_attempts: 100
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if v == nil {
		return cfg, nil
	}
	if err := v.UnmarshalKey(ConfigKey, &cfg); err != nil {
		return Config{}, cerr.Wrapf(err, "unmarshal %q config", ConfigKey)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) tokenSource() TokenSource {
	if c.TokenKind == TokenUUID {
		return UUIDTokens(c.TokenLength)
	}
	return AlphanumericTokens(c.TokenLength)
}
