package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// EndpointURL is a flag.Value holding an http(s) base endpoint. Set
// normalises the value by trimming trailing slashes.
type EndpointURL struct {
	raw string
}

// ParseFlags parses the client flags from args (program name excluded).
//
// Flags:
//
//	-a API base endpoint, e.g. http://localhost:8080/api
//	-request-timeout per-request timeout (e.g., "30s"); 0 disables it
//	-d session store DSN (SQLite file path)
//	-secret-key key sealing the stored session
//	-login-view name of the login view
//	-log-file log file path
//	-session-check-interval session watcher period (e.g., "1m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var endpoint EndpointURL

	fs := flag.NewFlagSet("trackspense", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&endpoint, "a", "API base endpoint")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s); 0 disables it")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Session store DSN")
	fs.StringVar(&cfg.App.SecretKey, "secret-key", "", "Session sealing key")
	fs.StringVar(&cfg.App.LoginView, "login-view", "", "Login view name")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.DurationVar(&cfg.Workers.SessionCheckInterval, "session-check-interval", 0, "Session watcher period (e.g., 1m)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Adapter.HTTPAddress = endpoint.String()
	return cfg, nil
}

// String returns the normalised endpoint or "" when unset.
func (e *EndpointURL) String() string {
	return e.raw
}

// Set validates s as an absolute http(s) URL with a host.
func (e *EndpointURL) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("need endpoint in a form `http(s)://host[:port][/path]`")
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("endpoint scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("endpoint must include a host")
	}

	e.raw = strings.TrimRight(u.String(), "/")
	return nil
}
