package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/recipe"
	"github.com/kdduha/slangbot/internal/render"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Inspect share links",
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode [link or query]",
	Short: "Print the recipe carried by a share link",
	Example: `  slangbot share decode "http://localhost:8080/?slang=eyJ1c2VySW5wdXQiOi..."
  slangbot share decode "recipe=eyJzZWVkQ29uY2VwdCI6..."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := linkQuery(args[0])
		if err != nil {
			return err
		}
		link, found, err := recipe.ParseQuery(query)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.NewDecode("no slang or recipe parameter in link", nil)
		}

		format := output
		if format == render.FormatText {
			format = render.FormatYAML
		}
		p, err := render.New(cmd.OutOrStdout(), format)
		if err != nil {
			return err
		}
		if link.Explain != nil {
			return p.Value(link.Explain)
		}
		return p.Value(link.Generation)
	},
}

// linkQuery accepts a full URL, a bare query string or "?query".
func linkQuery(link string) (url.Values, error) {
	link = strings.TrimSpace(link)
	if i := strings.IndexByte(link, '?'); i >= 0 {
		link = link[i+1:]
	}
	query, err := url.ParseQuery(link)
	if err != nil {
		return nil, apperrors.NewDecode(fmt.Sprintf("cannot parse link %q", link), err)
	}
	return query, nil
}

func init() {
	shareCmd.AddCommand(shareDecodeCmd)
}
