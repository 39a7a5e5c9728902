package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theory/julianday/calendar"
)

var rootCmd = &cobra.Command{
	Use:   "jdcal",
	Short: "Convert between calendar dates and Julian day numbers",
	Long: "jdcal converts proleptic calendar dates to continuous Julian day\n" +
		"numbers and back, under either the Julian or Gregorian leap-year rule.",
	SilenceUsage: true,
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .jdcal.yaml)")
	rootCmd.PersistentFlags().StringP("calendar", "c", "", "calendar system: gregorian or julian")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".jdcal")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetDefault("calendar", "gregorian")
	viper.SetEnvPrefix("JDCAL")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// selectedSystem resolves the calendar system from the --calendar flag,
// falling back to the JDCAL_CALENDAR environment variable and the config
// file, and defaulting to gregorian.
func selectedSystem(cmd *cobra.Command) (calendar.System, error) {
	name, _ := cmd.Flags().GetString("calendar")
	if name == "" {
		name = viper.GetString("calendar")
	}
	return calendar.ParseSystem(name)
}
