package cliconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/session"
)

var ErrCredentialNotFound = fmt.Errorf("credential not found")

// CLIConfig is the on-disk state of the admin tool, keyed by API host.
type CLIConfig struct {
	Sessions map[string]*session.Credential `json:"sessions"`
}

func GetConfigPath() (string, error) {
	if p := os.Getenv("ILFC_SESSION_FILE"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(home, ".ilfc", "config.json"), nil
}

func Load(path string) (*CLIConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file '%s': %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	var cfg CLIConfig
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config file '%s': %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *CLIConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory '%s': %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("opening config file '%s' for writing: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	if err := json.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config to file '%s': %w", path, err)
	}
	return nil
}

// HostKey returns the key a server URL is stored under.
func HostKey(server string) (string, error) {
	u, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("parsing server URL '%s': %w", server, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("server URL '%s' has no host", server)
	}
	return u.Host, nil
}

func (c *CLIConfig) GetCredential(server string) (*session.Credential, error) {
	key, err := HostKey(server)
	if err != nil {
		return nil, err
	}
	cred, ok := c.Sessions[key]
	if !ok || cred == nil {
		return nil, ErrCredentialNotFound
	}
	return cred, nil
}

var _ session.Store = (*HostStore)(nil)

// HostStore is a session.Store persisting the credential of one server
// inside the shared config file. Other hosts' entries are left untouched.
type HostStore struct {
	mu     sync.Mutex
	path   string
	server string
}

func NewHostStore(path, server string) (*HostStore, error) {
	if _, err := HostKey(server); err != nil {
		return nil, err
	}
	return &HostStore{path: path, server: server}, nil
}

func (s *HostStore) load() (*CLIConfig, error) {
	cfg, err := Load(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &CLIConfig{}
	}
	if cfg.Sessions == nil {
		cfg.Sessions = make(map[string]*session.Credential)
	}
	return cfg, nil
}

func (s *HostStore) Load(_ context.Context) (*session.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return nil, err
	}
	cred, err := cfg.GetCredential(s.server)
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return nil, session.ErrNoCredential
		}
		return nil, err
	}
	return cred, nil
}

func (s *HostStore) Save(_ context.Context, cred *session.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	key, _ := HostKey(s.server)
	c := *cred
	cfg.Sessions[key] = &c
	return Save(s.path, cfg)
}

func (s *HostStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	key, _ := HostKey(s.server)
	if _, ok := cfg.Sessions[key]; !ok {
		return nil
	}
	delete(cfg.Sessions, key)
	return Save(s.path, cfg)
}
