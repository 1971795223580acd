package blockkit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/slack-go/slack"

	"release-notify/internal/domain/model"
	"release-notify/internal/domain/ports"
)

const (
	footerIconURL = "https://image.freepik.com/free-photo/red-drawing-pin_1156-445.jpg"
	footerIconAlt = "images"
	changesIndent = 1

	maxHeaderLen = 150
	maxFieldLen  = 2000

	unknownValue = "unknown"
)

// Builder renders release notifications as Slack Block Kit payloads.
type Builder struct{}

var _ ports.PayloadBuilder = (*Builder)(nil)

// NewBuilder constructs a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build assembles the detailed notification: header, metadata, changes when
// there are any, then the footer.
func (b *Builder) Build(release model.Release, changes []model.Change) (model.Payload, error) {
	target := release.Target()

	header := fmt.Sprintf("Release started: [%s] :clapper:", target)
	if n := utf8.RuneCountInString(header); n > maxHeaderLen {
		return model.Payload{}, &model.BuildError{
			Err: fmt.Errorf("header is %d characters, slack allows %d", n, maxHeaderLen),
		}
	}

	fields := []*slack.TextBlockObject{
		markdown("• *Version*: *" + link(release.ReleaseURL, release.ReleaseName) + "*"),
		markdown("• *ArgoCD*: " + link(argoCDAppURL(release), "link")),
	}
	for _, f := range fields {
		if n := utf8.RuneCountInString(f.Text); n > maxFieldLen {
			return model.Payload{}, &model.BuildError{
				Err: fmt.Errorf("section field is %d characters, slack allows %d", n, maxFieldLen),
			}
		}
	}

	blocks := []any{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, header, true, false)),
		slack.NewSectionBlock(nil, fields, nil),
	}
	if len(changes) > 0 {
		blocks = append(blocks, changesBlock(changes))
	}
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewImageBlockElement(footerIconURL, footerIconAlt),
		markdown("Initiated by *"+release.ReleaseActor+"*"),
	))

	return model.Payload{
		Channel: release.Channel,
		Text:    fmt.Sprintf("Release started: [%s - %s] :clapper:", target, release.ReleaseName),
		Blocks:  blocks,
	}, nil
}

// Fallback builds the minimal warning payload used when Build, or anything
// before it, failed. Only the channel is mandatory.
func (b *Builder) Fallback(release model.Release, cause error) (model.Payload, error) {
	if strings.TrimSpace(release.Channel) == "" {
		return model.Payload{}, model.ErrNoChannel
	}
	if cause == nil {
		cause = errors.New("unknown error")
	}

	target := orUnknown(release.App) + "-" + orUnknown(release.Environment)
	name := orUnknown(release.ReleaseName)

	return model.Payload{
		Channel: release.Channel,
		Text:    fmt.Sprintf("Error generating detailed payload: [%s - %s] :warning:", target, name),
		Blocks: []any{
			slack.NewSectionBlock(markdown(":warning: *Release notification could not be constructed properly.*"), nil, nil),
			slack.NewContextBlock("", markdown("Error: `"+cause.Error()+"`")),
		},
	}, nil
}

func changesBlock(changes []model.Change) *slack.RichTextBlock {
	items := make([]slack.RichTextElement, 0, len(changes))
	for _, c := range changes {
		items = append(items, slack.NewRichTextSection(
			slack.NewRichTextSectionTextElement(c.Text, nil),
			slack.NewRichTextSectionLinkElement(c.URL, c.LinkText, nil),
		))
	}

	label := slack.NewRichTextSection(
		slack.NewRichTextSectionTextElement("• Changes", &slack.RichTextSectionTextStyle{Bold: true}),
	)
	return slack.NewRichTextBlock("", label, slack.NewRichTextList(slack.RTEListBullet, changesIndent, items...))
}

func argoCDAppURL(release model.Release) string {
	return release.ArgoCDURL + "/applications/argocd/" + release.Target()
}

func link(url, text string) string {
	return "<" + url + "|" + text + ">"
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return unknownValue
	}
	return value
}
