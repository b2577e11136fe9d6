package msaconv

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	"github.com/andrew-torda/msaconv/pkg/format"
	"github.com/andrew-torda/msaconv/pkg/msa"
	"github.com/andrew-torda/msaconv/pkg/render"
)

const (
	cfgName   = "msaconv" // so msaconv.yaml in the current directory
	envPrefix = "MSACONV"
)

// RenderConfig is for the render command
type RenderConfig struct {
	// pixels per residue
	Cell int `mapstructure:"cell"`

	// size of the names, in points
	FontSize float64 `mapstructure:"font-size"`
}

// Config is everything that can come from the config file, the
// environment (MSACONV_WRAP_WIDTH and so on) or the command line.
// The command line wins.
type Config struct {
	// residues per line, 0 for the format's usual width
	WrapWidth int `mapstructure:"wrap-width"`

	// write descriptions in formats that can hold them
	Descriptions bool `mapstructure:"descriptions"`

	// conservation lines under Clustal blocks
	Consensus bool `mapstructure:"consensus"`

	// any, dna, rna or protein
	Alphabet string `mapstructure:"alphabet"`

	LogLevel string `mapstructure:"log-level"`
	Verbose  bool   `mapstructure:"verbose"`

	Render RenderConfig `mapstructure:"render"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("wrap-width", 0)
	v.SetDefault("alphabet", "any")
	v.SetDefault("log-level", "info")
	v.SetDefault("render.cell", 12)
	v.SetDefault("render.font-size", 10.0)
}

// readConfig reads the config file, if there is one. If cfgFile is
// empty, we look for msaconv.yaml in the current directory, and it
// does not matter if it is not there.
func readConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(cfgName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	return nil
}

// NewConfig returns a new Config populated from v.
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "unable to decode config")
	}
	return c, nil
}

// WriteOptions is the part of the config the writers need.
func (c Config) WriteOptions() format.WriteOptions {
	return format.WriteOptions{
		WrapWidth:        c.WrapWidth,
		EmitDescriptions: c.Descriptions,
		Consensus:        c.Consensus,
	}
}

// Validator gives a validator for the configured alphabet.
func (c Config) Validator() (*msa.Validator, error) {
	alfbt, ok := alphabet.ByName(c.Alphabet)
	if !ok {
		return nil, errors.Errorf("unknown alphabet \"%s\", want any, dna, rna or protein", c.Alphabet)
	}
	return &msa.Validator{Alphabet: alfbt}, nil
}

// RenderOptions is the part of the config the render command needs.
func (c Config) RenderOptions() render.Options {
	return render.Options{Cell: c.Render.Cell, FontSize: c.Render.FontSize}
}

// level turns the config into a log level. Verbose means debug,
// whatever log-level says.
func (c Config) level() (log.Level, error) {
	if c.Verbose {
		return log.DebugLevel, nil
	}
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(strings.ToLower(c.LogLevel))
}
