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
	"log"
	"strconv"
	"strings"

	"github.com/rotblauer/fieldsamp/common"
	"github.com/rotblauer/fieldsamp/geo/anchor"
	"github.com/spf13/cobra"
)

var optHemisphere string

// anchorCmd represents the anchor command
var anchorCmd = &cobra.Command{
	Use:   "anchor COORDINATE...",
	Short: "Convert coordinates between degrees-minutes-seconds and decimal degrees",
	Long: `Anchor converts each argument and prints the input and its conversion, tab separated.

A decimal argument (40.115, -88.247222) is printed as DMS (40-06-54.00).
A DMS argument (40-06-54, "88 14 50.5", 40:06:54) is printed as decimal degrees,
signed by --hemisphere when given.
`,
	Example: `  fieldsamp anchor 40.115 -88.247222
  fieldsamp anchor --hemisphere W 88-14-50`,
	// Negative decimals look like shorthand flags to pflag; parseAnchorArgs handles them.
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		coords, err := parseAnchorArgs(cmd, args)
		if err != nil {
			log.Fatalln(err)
		}
		if help, _ := cmd.Flags().GetBool("help"); help {
			cobra.CheckErr(cmd.Help())
			return
		}
		setDefaultSlog(cmd, coords)
		if len(coords) == 0 {
			cobra.CheckErr(cmd.Usage())
			log.Fatalln("anchor: at least one coordinate is required")
		}

		for _, arg := range coords {
			out, err := convertCoordinate(arg, anchor.Hemisphere(strings.ToUpper(optHemisphere)))
			if err != nil {
				log.Fatalln(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, out)
		}
	},
}

func init() {
	rootCmd.AddCommand(anchorCmd)
	anchorCmd.Flags().StringVar(&optHemisphere, "hemisphere", "", "Hemisphere for DMS input: N, S, E or W")
}

// positionalMark keeps negative numbers from being parsed as flags.
const positionalMark = "\x00"

// parseAnchorArgs parses flags and returns the coordinates in order,
// including negative decimals.
func parseAnchorArgs(cmd *cobra.Command, args []string) ([]string, error) {
	marked := make([]string, len(args))
	for i, a := range args {
		if isNegativeNumber(a) {
			a = positionalMark + a
		}
		marked[i] = a
	}
	if err := cmd.ParseFlags(marked); err != nil {
		return nil, err
	}
	coords := append([]string(nil), cmd.Flags().Args()...)
	for i := range coords {
		coords[i] = strings.TrimPrefix(coords[i], positionalMark)
	}
	return coords, nil
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

func convertCoordinate(arg string, h anchor.Hemisphere) (string, error) {
	_, numErr := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	dd, err := anchor.ResolveCoordinate(arg, h)
	if err != nil {
		return "", err
	}
	if numErr == nil {
		return anchor.ToDMS(dd), nil
	}
	return common.DecimalString(dd, common.GPSPrecision6), nil
}
