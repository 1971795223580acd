package di

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setEnv(t *testing.T, output string, overrides map[string]string) {
	t.Helper()
	values := map[string]string{
		"INPUT_APP":           "api",
		"INPUT_ENVIRONMENT":   "prod",
		"INPUT_RELEASE_URL":   "https://x/r/1",
		"INPUT_RELEASE_NAME":  "v1.2.0",
		"INPUT_RELEASE_BODY":  "- Add retries (#45)\n- typo fix",
		"INPUT_RELEASE_ACTOR": "alice",
		"INPUT_GITHUB_REPO":   "org/api",
		"INPUT_CHANNEL":       "#releases",
		"INPUT_ARGOCD_URL":    "https://argo",
		"INPUT_LOG_LEVEL":     "error",
		"GITHUB_OUTPUT":       output,
	}
	for k, v := range overrides {
		values[k] = v
	}
	for k, v := range values {
		t.Setenv(k, v)
	}
}

func runAndRead(t *testing.T, output string) map[string]any {
	t.Helper()
	application, err := InitializeApp()
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := application.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	value, ok := strings.CutPrefix(strings.TrimSuffix(string(raw), "\n"), "slack_payload=")
	if !ok {
		t.Fatalf("unexpected output line: %q", raw)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	return doc
}

func TestInitializeAppWritesDetailedPayload(t *testing.T) {
	output := filepath.Join(t.TempDir(), "github_output")
	setEnv(t, output, nil)

	doc := runAndRead(t, output)
	if doc["text"] != "Release started: [api-prod - v1.2.0] :clapper:" {
		t.Fatalf("unexpected summary: %v", doc["text"])
	}
	if blocks := doc["blocks"].([]any); len(blocks) != 4 {
		t.Fatalf("expected header, metadata, changes and footer, got %d blocks", len(blocks))
	}
}

func TestInitializeAppFallsBackWhenInputMissing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "github_output")
	setEnv(t, output, nil)
	t.Setenv("INPUT_APP", "")
	if err := os.Unsetenv("INPUT_APP"); err != nil {
		t.Fatalf("unset INPUT_APP: %v", err)
	}

	doc := runAndRead(t, output)
	if doc["text"] != "Error generating detailed payload: [unknown-prod - v1.2.0] :warning:" {
		t.Fatalf("unexpected fallback summary: %v", doc["text"])
	}
	if doc["channel"] != "#releases" {
		t.Fatalf("unexpected channel: %v", doc["channel"])
	}
}

func TestInitializeAppFailsOnUnwritableOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "missing", "github_output")
	setEnv(t, output, nil)

	application, err := InitializeApp()
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := application.Run(context.Background()); err == nil {
		t.Fatalf("expected run to fail when the output cannot be written")
	}
}
