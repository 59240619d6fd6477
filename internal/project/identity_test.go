package project

import (
	"errors"
	"testing"
)

func TestIsValidPackageName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"random", true},
		{"my-tool", true},
		{"my_tool", true},
		{"_scratch", true},
		{"tool2", true},
		{"", false},
		{"7up", false},
		{"-dash", false},
		{"weird name", false},
		{"ünïcode", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPackageName(tt.name); got != tt.valid {
				t.Fatalf("IsValidPackageName(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestResolveIdentity(t *testing.T) {
	cfg := Config{DefaultVersion: "0.1.0"}

	tests := []struct {
		name        string
		sourcePath  string
		selfVersion string
		want        Identity
		wantErr     bool
	}{
		{
			name:       "stem and default version",
			sourcePath: "/tmp/random.rs",
			want:       Identity{Name: "random", Version: "0.1.0"},
		},
		{
			name:       "dashed stem",
			sourcePath: "my-tool.rs",
			want:       Identity{Name: "my-tool", Version: "0.1.0"},
		},
		{
			name:        "self version wins",
			sourcePath:  "random.rs",
			selfVersion: "1.2.3",
			want:        Identity{Name: "random", Version: "1.2.3"},
		},
		{
			name:       "digit-leading stem rejected",
			sourcePath: "7up.rs",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ResolveIdentity(tt.sourcePath, tt.selfVersion, cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Fatalf("err = %v, want ErrInvalidName", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveIdentity returned error: %v", err)
			}
			if id != tt.want {
				t.Fatalf("ResolveIdentity = %+v, want %+v", id, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	cfg := Config{}
	if got := cfg.Dir("/home/u/random.rs", "random"); got != "/home/u/random" {
		t.Fatalf("Dir = %q, want %q", got, "/home/u/random")
	}
	cfg.CacheRoot = "/var/cache/cargo-single"
	if got := cfg.Dir("/home/u/random.rs", "random"); got != "/var/cache/cargo-single/random" {
		t.Fatalf("Dir with cache root = %q", got)
	}
}
