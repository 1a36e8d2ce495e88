package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kdduha/slangbot/internal/models"
	"github.com/kdduha/slangbot/internal/render"
	"github.com/kdduha/slangbot/internal/session"
)

var (
	explainParams  = models.DefaultExplanationParameters()
	generateParams = models.DefaultGenerationParameters()

	copyResult bool
	shareLink  bool
)

var explainCmd = &cobra.Command{
	Use:   "explain [slang]",
	Short: "Explain a slang term or phrase",
	Example: `  slangbot explain "no cap" --tone "Like I'm 5" --persona "A Fellow Gamer"
  slangbot explain rizz --format "Markdown Table" --language "🇫🇷 French"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return submit(cmd, models.GenerationWord, func(s *session.Controller) (models.Artifact, error) {
			resp, err := s.SubmitExplanation(cmd.Context(), strings.Join(args, " "), explainParams)
			return resp.Artifact, err
		})
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [seed concept]",
	Short: "Invent a new slang word or saying",
	Example: `  slangbot generate "the feeling when your code works on the first try"
  slangbot generate "monday meetings" --type Saying --era "1920s Flapper" --humor 9`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return submit(cmd, generateParams.GenerationType, func(s *session.Controller) (models.Artifact, error) {
			resp, err := s.SubmitGeneration(cmd.Context(), strings.Join(args, " "), generateParams)
			return resp.Artifact, err
		})
	},
}

func submit(cmd *cobra.Command, generationType models.GenerationType, run func(*session.Controller) (models.Artifact, error)) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := a.session(cmd.Context())
	if err != nil {
		return err
	}

	p, err := render.New(cmd.OutOrStdout(), output, render.WithMarkdown(isTerminal()))
	if err != nil {
		return err
	}

	artifact, err := run(s)
	if err != nil {
		p.Error(err.Error())
		return err
	}
	if err := p.Artifact(artifact, generationType); err != nil {
		return err
	}

	if copyResult {
		if text, ok := s.CopyText(); ok {
			if err := render.Copy(text); err != nil {
				logger.Warn("failed to copy to clipboard", zap.Error(err))
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
		}
	}
	if shareLink {
		share, err := s.Share()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), share.URL)
	}
	return nil
}

func isTerminal() bool {
	return output == render.FormatText && isatty.IsTerminal(os.Stdout.Fd())
}

func init() {
	f := explainCmd.Flags()
	f.StringVar((*string)(&explainParams.Tone), "tone", string(explainParams.Tone), "Tone of the explanation")
	f.StringVar((*string)(&explainParams.Format), "format", string(explainParams.Format), "Auto, Paragraph, Bullet Points, JSON or Markdown Table")
	f.IntVar(&explainParams.Verbosity, "verbosity", explainParams.Verbosity, "Verbosity from 1 to 11")
	f.IntVar(&explainParams.Complexity, "complexity", explainParams.Complexity, "Complexity from 1 to 11")
	f.StringVar(&explainParams.Persona, "persona", explainParams.Persona, `Persona preset, or "Custom..." with --custom-persona`)
	f.StringVar(&explainParams.CustomPersona, "custom-persona", "", "Freeform persona")
	f.StringVar(&explainParams.NegativePrompt, "avoid", "", "Things the explanation must avoid")
	f.StringVar(&explainParams.Language, "language", explainParams.Language, "Language preset")
	f.BoolVar(&copyResult, "copy", false, "Copy the result to the clipboard")
	f.BoolVar(&shareLink, "share", false, "Print a share link for the result")

	g := generateCmd.Flags()
	g.StringVar(&generateParams.Era, "era", generateParams.Era, `Era preset, or "Custom..." with --custom-era`)
	g.StringVar(&generateParams.CustomEra, "custom-era", "", "Freeform era")
	g.StringVar(&generateParams.WordStyle, "style", generateParams.WordStyle, `Word style preset, or "Custom..." with --custom-style`)
	g.StringVar(&generateParams.CustomWordStyle, "custom-style", "", "Freeform word style")
	g.StringVar(&generateParams.Formality, "formality", generateParams.Formality, `Formality preset, or "Custom..." with --custom-formality`)
	g.StringVar(&generateParams.CustomFormality, "custom-formality", "", "Freeform formality")
	g.IntVar(&generateParams.Creativity, "creativity", generateParams.Creativity, "Creativity from 1 to 11")
	g.IntVar(&generateParams.Humor, "humor", generateParams.Humor, "Humor from 1 to 11")
	g.StringVar(&generateParams.Language, "language", generateParams.Language, "Language preset")
	g.StringVar((*string)(&generateParams.GenerationType), "type", string(generateParams.GenerationType), "Word or Saying")
	g.BoolVar(&copyResult, "copy", false, "Copy the result to the clipboard")
	g.BoolVar(&shareLink, "share", false, "Print a share link for the result")
}
