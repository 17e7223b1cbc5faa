// pkg/config/config.go

// Package config loads optional tuning for the strength engine from a
// sentinel.yaml file. Everything has code defaults; the file only overlays
// them. The loaded Params value is immutable from the caller's point of
// view: it is built once here and passed down, never read ambiently.
package config

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
)

// fileParams is the on-disk schema under the "strength" key. Severity keys
// are the finding kind display names.
type fileParams struct {
	Severities         map[string]float64    `mapstructure:"severities"`
	FullScoreBits      float64               `mapstructure:"full_score_bits"`
	PenaltyCap         float64               `mapstructure:"penalty_cap"`
	UncrackableSeconds float64               `mapstructure:"uncrackable_seconds"`
	Tiers              []strength.AttackTier `mapstructure:"tiers"`
	Words              []string              `mapstructure:"words"`
}

var kindNames = map[string]strength.FindingKind{
	strength.FindingDictionaryWord.String():    strength.FindingDictionaryWord,
	strength.FindingSequentialRun.String():     strength.FindingSequentialRun,
	strength.FindingRepeatedRun.String():       strength.FindingRepeatedRun,
	strength.FindingKeyboardAdjacency.String(): strength.FindingKeyboardAdjacency,
	strength.FindingAllNumeric.String():        strength.FindingAllNumeric,
	strength.FindingAllAlpha.String():          strength.FindingAllAlpha,
}

// Load returns the engine tuning, overlaying defaults with the config file
// at path when given, otherwise the first sentinel.yaml found in the
// standard locations. A missing file is not an error.
func Load(path string) (strength.Params, error) {
	params := strength.DefaultParams()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sentinel")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sentinel")
		v.AddConfigPath("/etc/sentinel")
	}
	v.SetEnvPrefix("SENTINEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return params, cerr.Wrapf(err, "read config %s", path)
		}
		var notFound viper.ConfigFileNotFoundError
		if !cerr.As(err, &notFound) {
			// A malformed discovered file should not brick the tool.
			logger.L().Warn("ignoring unreadable sentinel.yaml", zap.Error(err))
		}
		return params, nil
	}
	logger.L().Info("loaded config file", zap.String("path", v.ConfigFileUsed()))

	var fp fileParams
	if err := v.UnmarshalKey("strength", &fp); err != nil {
		return params, cerr.Wrap(err, "parse strength section")
	}
	overlay(&params, fp)

	if err := validator.New().Struct(params); err != nil {
		return params, cerr.Wrap(err, "invalid strength tuning")
	}
	return params, nil
}

func overlay(params *strength.Params, fp fileParams) {
	for name, sev := range fp.Severities {
		if kind, ok := kindNames[name]; ok && sev >= 0 {
			params.Severities[kind] = sev
		}
	}
	if fp.FullScoreBits > 0 {
		params.FullScoreBits = fp.FullScoreBits
	}
	if fp.PenaltyCap > 0 {
		params.PenaltyCap = fp.PenaltyCap
	}
	if fp.UncrackableSeconds > 0 {
		params.UncrackableSeconds = fp.UncrackableSeconds
	}
	if len(fp.Tiers) > 0 {
		params.Tiers = fp.Tiers
	}
	if len(fp.Words) > 0 {
		params.Words = fp.Words
	}
}
