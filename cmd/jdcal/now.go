package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theory/julianday/calendar"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the Julian day number of the current instant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), formatJD(calendar.FromTime(time.Now())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
}
