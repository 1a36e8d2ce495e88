package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kdduha/slangbot/internal/models"
	"github.com/kdduha/slangbot/internal/render"
)

var soundCmd = &cobra.Command{
	Use:       "sound [on|off]",
	Short:     "Show or change the sound preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 1 {
			enabled, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			if err := a.history.SetSoundEnabled(cmd.Context(), enabled); err != nil {
				return err
			}
		}

		pref := models.SoundPreference{Enabled: a.history.SoundEnabled(cmd.Context())}
		p, err := render.New(cmd.OutOrStdout(), output)
		if err != nil {
			return err
		}
		if output == render.FormatText {
			return p.Value(switchName(pref.Enabled))
		}
		return p.Value(pref)
	},
}

func parseSwitch(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("want on or off, got %q", s)
	}
	return v, nil
}

func switchName(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
