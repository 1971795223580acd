package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"release-notify/internal/adapter/blockkit"
	"release-notify/internal/adapter/changelog"
	"release-notify/internal/adapter/githuboutput"
	"release-notify/internal/domain/model"
	"release-notify/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

func newApp(path string) *App {
	notification := usecase.NewReleaseNotification(
		changelog.NewExtractor(nopLogger{}),
		blockkit.NewBuilder(),
		githuboutput.NewWriter(path, nopLogger{}),
		nopLogger{},
		usecase.ReleaseNotificationConfig{Release: model.Release{
			App:          "api",
			Environment:  "prod",
			ReleaseURL:   "https://x/r/1",
			ReleaseName:  "v1.2.0",
			ReleaseActor: "alice",
			GitHubRepo:   "org/api",
			Channel:      "#releases",
			ArgoCDURL:    "https://argo",
		}},
	)
	return New(notification, nopLogger{})
}

func TestRunWritesStepOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	if err := newApp(path).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(raw), "slack_payload={") || strings.Count(string(raw), "\n") != 1 {
		t.Fatalf("unexpected step output: %q", raw)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := newApp(path).Run(ctx); err == nil {
		t.Fatalf("expected cancelled context to abort the run")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no output to be written, stat err: %v", err)
	}
}
