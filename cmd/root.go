/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/fieldsamp/common"
	"github.com/rotblauer/fieldsamp/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string
var optLogLevel string
var optLogFormat string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fieldsamp",
	Short: "Plan well-spaced soil sample locations",
	Long: `fieldsamp lays out sample locations in a rectangular field,
keeping every pair of samples at least a minimum distance apart,
and gives each one local field coordinates (feet), GPS coordinates
(decimal degrees and degrees-minutes-seconds), and a plot id.

Configuration is read from flags, FIELDSAMP_* environment variables
(FIELDSAMP_FIELD_WIDTH sets field.width), and $HOME/.fieldsamp.yaml.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fieldsamp.yaml)")
	rootCmd.PersistentFlags().StringVar(&optLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&optLogFormat, "log-format", "text", "Log format: text or json")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".fieldsamp" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fieldsamp")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		cobra.CheckErr(err)
	}
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	slog.SetDefault(slog.New(common.NewSlogHandler(optLogLevel, optLogFormat)))
}

// fieldFlags are named by configuration key, so viper binds them directly.
// This flagset is shared by the commands that need a configuration.
var fieldFlags = newFieldFlags()

func newFieldFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("field", pflag.ContinueOnError)
	d := params.DefaultConfig()

	fs.Float64("field.width", d.Field.Width, "Field width (ft), east-west")
	fs.Float64("field.height", d.Field.Height, "Field height (ft), north-south")
	fs.Float64("field.min_distance", d.Field.MinDistance, "Minimum distance between samples (ft); 0 disables")
	fs.Int("field.samples", d.Field.Samples, "Number of samples requested")
	fs.Int("field.max_attempts", d.Field.MaxAttempts, "Maximum candidate draws")

	fs.String("frame.latitude", d.Frame.Latitude, "Anchor latitude, DMS (40-06-54) or decimal (40.115)")
	fs.String("frame.longitude", d.Frame.Longitude, "Anchor longitude, DMS (88-14-50) or decimal (-88.247222)")
	fs.String("frame.latitude_hemisphere", d.Frame.LatitudeHemisphere, "Hemisphere for a DMS latitude: N or S")
	fs.String("frame.longitude_hemisphere", d.Frame.LongitudeHemisphere, "Hemisphere for a DMS longitude: E or W")
	fs.Float64("frame.lat_feet_per_degree", d.Frame.LatFeetPerDegree, "Feet per degree of latitude")
	fs.Float64("frame.lon_feet_per_degree", d.Frame.LonFeetPerDegree,
		`Feet per degree of longitude
Use a value for the anchor's latitude; it is not corrected per sample.`)
	fs.Float64("frame.east_offset_ft", d.Frame.EastOffsetFt, "Feet added to x before projecting longitude")
	fs.Bool("frame.shift_y", d.Frame.ShiftY, "Report Y_ft in the anchor frame (y + anchor latitude in feet)")

	fs.Bool("grid.enabled", d.Grid.Enabled, "Assign plot ids")
	fs.Float64("grid.cell_width", d.Grid.CellWidth, "Plot width (ft)")
	fs.Float64("grid.cell_height", d.Grid.CellHeight, "Plot height (ft)")
	fs.Int("grid.cols", d.Grid.Cols, "Plots across")
	fs.Int("grid.rows", d.Grid.Rows, "Plots down")

	fs.Int("output.s2_level", d.Output.S2Level, "S2 cell level for per-sample cell tokens")
	return fs
}

// loadConfig binds the shared flags and loads the configuration.
func loadConfig(cmd *cobra.Command) (*params.Config, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return params.Load(viper.GetViper())
}
