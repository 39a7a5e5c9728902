package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theory/julianday/calendar"
)

var fromCmd = &cobra.Command{
	Use:   "from <jd>",
	Short: "Convert a Julian day number to a calendar date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		system, err := selectedSystem(cmd)
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid julian day %q: %w", args[0], err)
		}
		jd := calendar.JulianDay(value)
		date, err := calendar.FromJulianDay(jd, system)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", date, jd.Weekday())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fromCmd)
}
