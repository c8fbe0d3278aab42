package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-playground/validator/v10"
	"github.com/imsidplayer/sidratings/internal/env"
	"github.com/k0kubun/pp/v3"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	History History `yaml:"history"`
	Rating  Rating  `yaml:"rating"`
	Backup  Backup  `yaml:"backup"`
	Prompt  Prompt  `yaml:"prompt"`
	Logging Logging `yaml:"logging"`
}

type History struct {
	Filename  string   `yaml:"filename" validate:"required,basename"`
	Encodings []string `yaml:"encodings" validate:"required,min=1,dive,encoding"`
}

type Rating struct {
	Filename string `yaml:"filename" validate:"required,basename"`
}

type Backup struct {
	Prefix string `yaml:"prefix" validate:"required,basename"`
}

type Prompt struct {
	Style string `yaml:"style" validate:"required,oneof=auto plain tui"`
}

type Logging struct {
	Enabled  bool     `yaml:"enabled"`
	Level    string   `yaml:"level" validate:"required,oneof=debug info warn error"`
	Rotation Rotation `yaml:"rotation"`
}

type Rotation struct {
	MaxSize  string `yaml:"max_size" validate:"validSize"`
	MaxFiles int    `yaml:"max_files" validate:"gte=1"`
}

// String dumps the config for debug logs
func (c Config) String() string {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p.Sprint(c)
}

type configError struct {
	configPath string
	err        error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't read the "%s" config file.
		Please fix it or specify a valid config path with --config.
		The default config path is %s; it is optional.
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.SIDRATINGS_CONFIG_PATH,
		defaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (e configError) Unwrap() error {
	return e.err
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

func defaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func readConfigFile(path string) (Config, error) {
	cfg := *NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{configPath: path, err: err}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, configError{configPath: path, err: err}
	}

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			for _, err := range errs {
				return cfg, fmt.Errorf("validation error: Field %s, %q is invalid", err.Namespace(), fmt.Sprint(err.Value()))
			}
		}
		return cfg, err
	}
	return cfg, nil
}

func initValidator() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("encoding", validateEncoding)
	_ = validate.RegisterValidation("basename", validateBasename)
}

// Parse loads the config file at path. An empty path means the default
// location, which may be absent: the defaults are used then and nothing
// is created on disk.
func Parse(path string) (Config, error) {
	initValidator()

	configPath := path
	if configPath == "" {
		configPath = env.SIDRATINGS_CONFIG_PATH
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file, using defaults", "config-file", configPath)
			return *NewDefaultConfig(), nil
		}
	} else {
		expanded, err := expandPath(configPath)
		if err != nil {
			return Config{}, parsingError{err: err}
		}
		configPath = expanded
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err := readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}
