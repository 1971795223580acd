package githuboutput

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"release-notify/internal/domain/model"
	"release-notify/internal/domain/ports"
)

// OutputName is the step output key consumed by the Slack action.
const OutputName = "slack_payload"

// Writer appends payloads to a GitHub Actions step output file.
type Writer struct {
	path   string
	logger ports.Logger
}

var _ ports.PayloadWriter = (*Writer)(nil)

// NewWriter creates a Writer for the file named by GITHUB_OUTPUT.
func NewWriter(path string, logger ports.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Write appends a single "slack_payload=<json>" line.
func (w *Writer) Write(ctx context.Context, payload model.Payload) (err error) {
	if w.path == "" {
		return &model.OutputWriteError{Err: errors.New("GITHUB_OUTPUT is not set")}
	}

	line, err := encodeLine(payload)
	if err != nil {
		return &model.OutputWriteError{Path: w.path, Err: err}
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &model.OutputWriteError{Path: w.path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &model.OutputWriteError{Path: w.path, Err: cerr}
		}
	}()

	if _, err := f.Write(line); err != nil {
		return &model.OutputWriteError{Path: w.path, Err: err}
	}

	if w.logger != nil {
		w.logger.Info(ctx, "payload written to step output", "output", OutputName, "bytes", len(line))
	}
	return nil
}

// encodeLine renders compact JSON without HTML escaping so <url|text> links stay literal.
func encodeLine(payload model.Payload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(OutputName)
	buf.WriteByte('=')

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return buf.Bytes(), nil
}
