package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theory/julianday/calendar"
)

var toCmd = &cobra.Command{
	Use:   "to <date>",
	Short: "Convert a calendar date to a Julian day number",
	Long: "Convert a calendar date such as 2000-01-01T12:00 to a Julian day\n" +
		"number. Years may carry a leading sign for astronomical numbering.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		system, err := selectedSystem(cmd)
		if err != nil {
			return err
		}
		date, err := calendar.ParseDate(args[0])
		if err != nil {
			return err
		}
		jd, err := calendar.ToJulianDay(date, system)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatJD(jd))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toCmd)
}

// formatJD renders a day count in the shortest decimal form that parses
// back to the same float64.
func formatJD(jd calendar.JulianDay) string {
	return strconv.FormatFloat(float64(jd), 'f', -1, 64)
}
