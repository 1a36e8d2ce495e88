// Package render prints session results and history for the command line.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bytedance/sonic"
	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/kdduha/slangbot/internal/models"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var clipboardWriteAll = clipboard.WriteAll

// Copy publishes text to the system clipboard.
func Copy(text string) error {
	return clipboardWriteAll(text)
}

type Printer struct {
	out      io.Writer
	format   string
	markdown bool
	width    int
}

type Option func(*Printer)

// WithMarkdown renders explanation text through glamour.
func WithMarkdown(enabled bool) Option {
	return func(p *Printer) {
		p.markdown = enabled
	}
}

func WithWidth(width int) Option {
	return func(p *Printer) {
		p.width = width
	}
}

func New(out io.Writer, format string, opts ...Option) (*Printer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	case "":
		format = FormatText
	default:
		return nil, fmt.Errorf("unknown output format %q, want text, json or yaml", format)
	}
	p := &Printer{out: out, format: format, width: 80}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Artifact prints a submission result.
func (p *Printer) Artifact(a models.Artifact, generationType models.GenerationType) error {
	switch p.format {
	case FormatJSON, FormatYAML:
		return p.structured(a)
	}

	switch a.Kind {
	case models.ArtifactText:
		return p.explanation(a.Text)
	case models.ArtifactSlang:
		if a.Slang == nil {
			return fmt.Errorf("slang artifact without a result")
		}
		_, err := fmt.Fprintln(p.out, SlangCard(*a.Slang, generationType, p.width))
		return err
	default:
		return fmt.Errorf("unknown artifact kind %q", a.Kind)
	}
}

func (p *Printer) explanation(text string) error {
	if !p.markdown {
		_, err := fmt.Fprintln(p.out, text)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(p.width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(text)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.out, out)
	return err
}

// SlangCard lays out an invented term as a bordered card.
func SlangCard(r models.NewSlangResult, generationType models.GenerationType, width int) string {
	label := "Word"
	if generationType == models.GenerationSaying {
		label = "Saying"
	}
	body := strings.Join([]string{
		styleMuted.Render(label),
		styleTerm.Render(r.Term),
		"",
		styleLabel.Render("Definition") + " " + r.Definition,
		styleLabel.Render("Example") + " " + fmt.Sprintf("%q", r.Example),
		styleLabel.Render("Origin") + " " + r.Origin,
	}, "\n")
	return styleCard.Width(width).Render(body)
}

// History prints entries, newest first.
func (p *Printer) History(entries []models.HistoryEntry) error {
	if p.format != FormatText {
		return p.structured(entries)
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(p.out, styleMuted.Render("No history yet."))
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(p.out, "%s  %s  %s\n",
			styleMuted.Render(fmt.Sprint(e.ID)),
			styleMuted.Render(e.Timestamp),
			styleTerm.Render(e.UserInput),
		); err != nil {
			return err
		}
	}
	return nil
}

// Value prints any value in the structured formats, or with %v as text.
func (p *Printer) Value(v any) error {
	if p.format == FormatText {
		_, err := fmt.Fprintln(p.out, v)
		return err
	}
	return p.structured(v)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, styleError.Render(msg))
}

func (p *Printer) structured(v any) error {
	if p.format == FormatYAML {
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}
