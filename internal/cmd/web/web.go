// Package web wires configuration parsing and startup for the portal server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	platformcmd "github.com/tradelane/tradelane/internal/platform/cmd"
	"github.com/tradelane/tradelane/internal/web"
)

// Config holds the web command configuration. Environment values provide the
// defaults and flags override them.
type Config struct {
	HTTPAddr            string        `env:"TRADELANE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	AppName             string        `env:"TRADELANE_WEB_APP_NAME"`
	SaveLatency         time.Duration `env:"TRADELANE_WEB_SAVE_LATENCY" envDefault:"1500ms"`
	TrustForwardedProto bool          `env:"TRADELANE_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig loads environment defaults and then parses flags over them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "display name override")
	fs.DurationVar(&cfg.SaveLatency, "save-latency", cfg.SaveLatency, "simulated persistence latency on settings saves")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto from a fronting proxy")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the portal server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := web.NewServer(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		AppName:             cfg.AppName,
		SaveLatency:         cfg.SaveLatency,
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
