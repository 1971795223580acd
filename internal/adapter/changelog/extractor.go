package changelog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"release-notify/internal/domain/model"
	"release-notify/internal/domain/ports"
)

const (
	entryPrefix = "- "
	pullURLFmt  = "https://github.com/%s/pull/%s"
)

// entryPattern keeps the message greedy so only the trailing (#N) is the PR reference.
var entryPattern = regexp.MustCompile(`^- (.*)\s+\(#(\d+)\)$`)

// Extractor pulls pull-request changes out of a release body.
type Extractor struct {
	logger ports.Logger
}

var _ ports.ChangeExtractor = (*Extractor)(nil)

// NewExtractor constructs an Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract returns one change per "- message (#N)" line, in source order.
// Lines of any other shape are skipped. The body is treated as plain text.
func (x *Extractor) Extract(ctx context.Context, body, repo string) ([]model.Change, error) {
	if body == "" {
		return nil, nil
	}

	var changes []model.Change
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, entryPrefix) {
			continue
		}

		if x.logger != nil {
			x.logger.Info(ctx, "changelog entry", "line", line)
		}

		match := entryPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		changes = append(changes, newChange(match[1], match[2], repo))
	}

	return changes, nil
}

func newChange(message, number, repo string) model.Change {
	return model.Change{
		Message:  message,
		Number:   number,
		Text:     message + " ",
		LinkText: "(#" + number + ")",
		URL:      fmt.Sprintf(pullURLFmt, repo, number),
	}
}
