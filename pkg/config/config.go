package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/byxorna/stackit/pkg/runtime"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "~/.stackit.yaml"

	PreviewMarkup  = "markup"
	PreviewGlamour = "glamour"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	// Default is the default configuration that is used, along with ~/.stackit.yaml
	Default = Config{
		PageSize:      3,
		PopularTags:   nil,
		WatchSeed:     true,
		Sanitize:      false,
		PreviewEngine: PreviewMarkup,
		Theme:         ThemeDark,
		Author:        "",
	}
)

type Config struct {
	PageSize int `yaml:"pageSize" validate:"required,min=1,max=50"`
	// PopularTags overrides the sidebar tags that come with the board seed.
	PopularTags []string `yaml:"popularTags,omitempty" validate:"unique,dive,required"`
	// SeedFile is board content to load instead of the built in seed.
	SeedFile  string `yaml:"seedFile,omitempty" validate:""`
	WatchSeed bool   `yaml:"watchSeed" validate:""`
	// Sanitize strips unsafe HTML from rendered posts before display.
	Sanitize      bool   `yaml:"sanitize" validate:""`
	PreviewEngine string `yaml:"previewEngine" validate:"required,oneof=markup glamour"`
	Theme         string `yaml:"theme" validate:"required,oneof=light dark"`
	LogFile       string `yaml:"logFile,omitempty" validate:""`
	// Author is the name posts are signed with when no one is signed in.
	Author string `yaml:"author,omitempty" validate:""`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	if err := c.expandPaths(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Load reads the config at path. A missing file is not an error; Default is
// used instead.
func Load(path string) (*Config, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expandedPath)
	if errors.Is(err, os.ErrNotExist) {
		c := Default
		return &c, c.expandPaths()
	} else if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", expandedPath, err)
	}
	defer f.Close()

	return NewFromReader(f)
}

func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(*c)
	if err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.SeedFile, &c.LogFile} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("unable to expand %s: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// SetLogFile points logging at path, expanding a leading ~.
func (c *Config) SetLogFile(path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("unable to expand %s: %w", path, err)
	}
	c.LogFile = expanded
	return nil
}

// LogPath is where logs go: LogFile if set, otherwise the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return runtime.StateFile("stackit.log")
}
