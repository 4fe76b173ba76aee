package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/cliconfig"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/config"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/session"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/pkg/client"
)

const TokenEnv = "ILFC_TOKEN"

type Factory struct {
	cfg *config.Config
}

func NewFactory() *Factory {
	return &Factory{}
}

// Config returns the effective configuration (flags > env > file > defaults).
func (f *Factory) Config() (*config.Config, error) {
	if f.cfg != nil {
		return f.cfg, nil
	}
	cfg, err := config.Decode(viper.AllSettings())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	f.cfg = cfg
	return cfg, nil
}

// SessionStore returns the durable store of the configured server.
// With ILFC_TOKEN set the session lives in memory only.
func (f *Factory) SessionStore() (session.Store, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}
	if token := os.Getenv(TokenEnv); token != "" {
		return session.NewMemoryStore(&session.Credential{AccessToken: token}), nil
	}
	path, err := cliconfig.GetConfigPath()
	if err != nil {
		return nil, err
	}
	return cliconfig.NewHostStore(path, cfg.BaseURL)
}

// GetClient returns a client bound to the stored session of the configured server.
func (f *Factory) GetClient(ctx context.Context) (*client.Client, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}
	store, err := f.SessionStore()
	if err != nil {
		return nil, err
	}
	state, err := session.Open(ctx, store)
	if err != nil {
		return nil, err
	}

	return client.New(cfg.BaseURL,
		client.WithSession(state),
		client.WithLogger(log.Logger),
		client.WithAuthMode(client.AuthMode(cfg.Auth.Mode)),
		client.WithLoginPath(cfg.Auth.LoginPath),
		client.WithRefreshPath(cfg.Auth.RefreshPath),
		client.WithUseCredentials(cfg.UseCredentials),
		client.WithTimeout(cfg.Timeout),
		client.WithOnAuthRequired(func(error) {
			log.Warn().Msgf("%s session expired, run %s to log in again", redCross, bold("ilfc login"))
		}),
	), nil
}

// GetAuthedClient is GetClient for commands that need a session up front.
func (f *Factory) GetAuthedClient(ctx context.Context) (*client.Client, error) {
	cli, err := f.GetClient(ctx)
	if err != nil {
		return nil, err
	}
	if !cli.Session().Authenticated() {
		log.Error().Msgf("%s not logged in to %s, run %s first", redCross, cli.BaseURL(), bold("ilfc login"))
		return nil, BeQuietError{}
	}
	return cli, nil
}
