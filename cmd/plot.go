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
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/rotblauer/fieldsamp/geo/plot"
	"github.com/spf13/cobra"
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot X Y",
	Short: "Print the plot id for a local field position",
	Long: `Plot prints the id of the plot cell holding the local field position (X, Y),
in feet from the field's south-west corner, before any anchor shift.
Positions off the grid print "none". Put -- before negative values:
fieldsamp plot -- -1 5
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		config, err := loadConfig(cmd)
		if err != nil {
			log.Fatalln(err)
		}
		if !config.Grid.Enabled {
			log.Fatalln(errors.New("plot grid is disabled (grid.enabled=false)"))
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			log.Fatalln(fmt.Errorf("x: %w", err))
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Fatalln(fmt.Errorf("y: %w", err))
		}

		id, ok := plot.NewGrid(config.Grid).CellOf(x, y)
		if !ok {
			id = "none"
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().AddFlagSet(fieldFlags)
}
