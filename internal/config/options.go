package config

import (
	"strings"
)

// Built-in defaults
const (
	DefaultRepo = "devboost-pro-max"
	DefaultHost = "github.com"
)

// Visibility is the visibility of the created remote repository
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility maps a flag value to a Visibility. Only "private" is private.
func ParseVisibility(value string) Visibility {
	if strings.TrimSpace(value) == string(VisibilityPrivate) {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

// IsPrivate reports whether the repository should be created private
func (v Visibility) IsPrivate() bool {
	return v == VisibilityPrivate
}

// Transport selects how the remote URL is formed
type Transport string

const (
	// TransportAuto uses SSH when a key is available, HTTPS otherwise
	TransportAuto Transport = "auto"
	// TransportSSH forces SSH (generating a key if needed)
	TransportSSH Transport = "ssh"
	// TransportHTTPS forces HTTPS and never touches SSH keys
	TransportHTTPS Transport = "https"
)

// ParseTransport maps a --transport value to a Transport.
// "yes"/"ssh" force SSH, "auto" or an empty value mean auto, and every other
// value, including "no", selects HTTPS.
func ParseTransport(value string) Transport {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return TransportAuto
	case "yes", "ssh":
		return TransportSSH
	default:
		return TransportHTTPS
	}
}

// WantsSSH reports whether SSH keys should be provisioned for this transport
func (t Transport) WantsSSH() bool {
	return t == TransportAuto || t == TransportSSH
}

// ParseYesNo returns false only for "no" (case-insensitive); everything else is true.
func ParseYesNo(value string) bool {
	return strings.ToLower(strings.TrimSpace(value)) != "no"
}

// Options is the resolved configuration for one run.
// It is built once by Resolve and not modified afterwards.
type Options struct {
	Repo        string
	User        string
	Email       string
	Visibility  Visibility
	Transport   Transport
	Token       string
	SeedFiles   bool
	Host        string
	AwaitRemote bool
}

// DefaultOptions returns the built-in defaults
func DefaultOptions() Options {
	return Options{
		Repo:       DefaultRepo,
		Visibility: VisibilityPublic,
		Transport:  TransportAuto,
		SeedFiles:  true,
		Host:       DefaultHost,
	}
}

// Flag names accepted on the command line
const (
	FlagRepo        = "repo"
	FlagUser        = "user"
	FlagEmail       = "email"
	FlagVisibility  = "visibility"
	FlagTransport   = "transport"
	FlagInit        = "init"
	FlagToken       = "token"
	FlagHost        = "host"
	FlagAwaitRemote = "await-remote"
)

// Resolve builds Options from the defaults, then the config file (may be nil),
// then explicitly given flags. flags maps a flag name to its raw value and
// should only contain flags the user actually passed. Empty values fall back
// to the previous layer.
func Resolve(file *File, flags map[string]string) Options {
	opts := DefaultOptions()
	if file != nil {
		file.apply(&opts)
	}

	set := func(name string, fn func(string)) {
		if v, ok := flags[name]; ok && v != "" {
			fn(v)
		}
	}
	set(FlagRepo, func(v string) { opts.Repo = v })
	set(FlagUser, func(v string) { opts.User = v })
	set(FlagEmail, func(v string) { opts.Email = v })
	set(FlagVisibility, func(v string) { opts.Visibility = ParseVisibility(v) })
	set(FlagTransport, func(v string) { opts.Transport = ParseTransport(v) })
	set(FlagInit, func(v string) { opts.SeedFiles = ParseYesNo(v) })
	set(FlagToken, func(v string) { opts.Token = v })
	set(FlagHost, func(v string) { opts.Host = v })
	set(FlagAwaitRemote, func(v string) { opts.AwaitRemote = v == "true" })

	return opts
}
