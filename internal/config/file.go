package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File holds defaults loaded from a YAML config file.
// Empty strings mean the key was not set.
type File struct {
	Repo        string `yaml:"repo"`
	User        string `yaml:"user"`
	Email       string `yaml:"email"`
	Visibility  string `yaml:"visibility"`
	Transport   string `yaml:"transport"`
	Init        string `yaml:"init"`
	Token       string `yaml:"token"`
	Host        string `yaml:"host"`
	AwaitRemote *bool  `yaml:"await_remote"`
}

// DefaultFilePath returns $XDG_CONFIG_HOME/gitlaunch/config.yaml, falling back
// to ~/.config/gitlaunch/config.yaml.
func DefaultFilePath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitlaunch", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitlaunch", "config.yaml")
}

// Load reads a YAML config file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDefault loads the config file at DefaultFilePath. A missing file is not
// an error and yields (nil, nil).
func LoadDefault() (*File, error) {
	path := DefaultFilePath()
	if path == "" {
		return nil, nil
	}
	file, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return file, err
}

// Parse unmarshals YAML bytes into a File.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &file, nil
}

// apply overlays the non-empty values of f onto opts.
func (f *File) apply(opts *Options) {
	if f.Repo != "" {
		opts.Repo = f.Repo
	}
	if f.User != "" {
		opts.User = f.User
	}
	if f.Email != "" {
		opts.Email = f.Email
	}
	if f.Visibility != "" {
		opts.Visibility = ParseVisibility(f.Visibility)
	}
	if f.Transport != "" {
		opts.Transport = ParseTransport(f.Transport)
	}
	if f.Init != "" {
		opts.SeedFiles = ParseYesNo(f.Init)
	}
	if f.Token != "" {
		opts.Token = f.Token
	}
	if f.Host != "" {
		opts.Host = f.Host
	}
	if f.AwaitRemote != nil {
		opts.AwaitRemote = *f.AwaitRemote
	}
}
