package cliconfig

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/session"
)

func TestHostStore_RoundTripPerHost(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	a, err := NewHostStore(path, "https://a.example.com/api")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewHostStore(path, "https://b.example.com/api")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.Load(ctx); !errors.Is(err, session.ErrNoCredential) {
		t.Fatalf("Load() on missing file error = %v, want ErrNoCredential", err)
	}

	if err := a.Save(ctx, &session.Credential{AccessToken: "A1", RefreshToken: "RA"}); err != nil {
		t.Fatalf("Save(a) error = %v", err)
	}
	if err := b.Save(ctx, &session.Credential{AccessToken: "B1"}); err != nil {
		t.Fatalf("Save(b) error = %v", err)
	}

	got, err := a.Load(ctx)
	if err != nil {
		t.Fatalf("Load(a) error = %v", err)
	}
	if got.AccessToken != "A1" || got.RefreshToken != "RA" {
		t.Errorf("Load(a) = %+v", got)
	}

	if err := a.Clear(ctx); err != nil {
		t.Fatalf("Clear(a) error = %v", err)
	}
	if _, err := a.Load(ctx); !errors.Is(err, session.ErrNoCredential) {
		t.Errorf("Load(a) after clear error = %v", err)
	}
	if got, err := b.Load(ctx); err != nil || got.AccessToken != "B1" {
		t.Errorf("Load(b) = %+v, %v; other host must survive", got, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
}

func TestHostKey(t *testing.T) {
	tests := []struct {
		server  string
		want    string
		wantErr bool
	}{
		{server: "http://localhost:8000/api", want: "localhost:8000"},
		{server: "https://ilfc.example.com", want: "ilfc.example.com"},
		{server: "/api", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.server, func(t *testing.T) {
			got, err := HostKey(tt.server)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HostKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("HostKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
