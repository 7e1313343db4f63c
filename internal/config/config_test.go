package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.LiveInterval != defaultLiveInterval {
		t.Fatalf("expected live interval %v, got %v", defaultLiveInterval, cfg.LiveInterval)
	}
	if cfg.IdleInterval != defaultIdleInterval {
		t.Fatalf("expected idle interval %v, got %v", defaultIdleInterval, cfg.IdleInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.ESPN.BaseURL != defaultESPNBaseURL {
		t.Fatalf("unexpected espn base url %s", cfg.ESPN.BaseURL)
	}
	if cfg.Decision.BaseURL != defaultDecisionBaseURL {
		t.Fatalf("unexpected decision base url %s", cfg.Decision.BaseURL)
	}
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Folder != defaultSnapshotFolder {
		t.Fatalf("unexpected snapshot config %+v", cfg.Snapshots)
	}
	if cfg.Notify.SlackWebhookURL != "" {
		t.Fatalf("expected notifier disabled by default")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envLiveInterval, "2s")
	t.Setenv(envIdleInterval, "30s")
	t.Setenv(envESPNBaseURL, "http://example.test/sports")
	t.Setenv(envSlackWebhook, "https://hooks.slack.test/abc")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.LiveInterval != 2*time.Second || cfg.IdleInterval != 30*time.Second {
		t.Fatalf("expected interval overrides, got %v/%v", cfg.LiveInterval, cfg.IdleInterval)
	}
	if cfg.ESPN.BaseURL != "http://example.test/sports" {
		t.Fatalf("expected espn base url override, got %s", cfg.ESPN.BaseURL)
	}
	if cfg.Notify.SlackWebhookURL != "https://hooks.slack.test/abc" {
		t.Fatalf("expected webhook override, got %s", cfg.Notify.SlackWebhookURL)
	}
}

func TestDurationEnvRejectsGarbage(t *testing.T) {
	t.Setenv(envLiveInterval, "soon")
	cfg := Load()
	if cfg.LiveInterval != defaultLiveInterval {
		t.Fatalf("expected default after bad duration, got %v", cfg.LiveInterval)
	}

	t.Setenv(envLiveInterval, "-5s")
	cfg = Load()
	if cfg.LiveInterval != defaultLiveInterval {
		t.Fatalf("expected default after negative duration, got %v", cfg.LiveInterval)
	}
}
