package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history [search]",
	Short: "List past explanations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := render.New(cmd.OutOrStdout(), output)
		if err != nil {
			return err
		}
		return p.History(a.history.List(cmd.Context(), strings.Join(args, " ")))
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a past explanation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		entry, found := a.history.Get(cmd.Context(), id)
		if !found {
			return apperrors.NewNotFound(fmt.Sprintf("history entry %d not found", id))
		}
		p, err := render.New(cmd.OutOrStdout(), output)
		if err != nil {
			return err
		}
		if output != render.FormatText {
			return p.Value(entry)
		}
		return p.Value(entry.GeneratedPrompt)
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return a.history.Delete(cmd.Context(), id)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return a.history.Clear(cmd.Context())
	},
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
