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
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/fieldsamp/api"
	"github.com/rotblauer/fieldsamp/export"
	"github.com/rotblauer/fieldsamp/geo/sampler"
	"github.com/rotblauer/fieldsamp/rgeo"
	"github.com/spf13/cobra"
)

var optSeed uint64
var optOut []string
var optRegion bool

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a set of sample locations",
	Long: `Generate places up to field.samples samples uniformly at random in the field,
rejecting any candidate closer than field.min_distance to an accepted sample,
and writes one record per sample.

Outputs are chosen by file extension: .csv or .geojson (or .json), each optionally
followed by .gz for gzip compression. With no --out, CSV is written to stdout.

A short set (fewer samples than requested, because the attempt budget ran out) is
not an error; it is logged as a warning and the records placed are still written.
`,
	Example: `  fieldsamp generate --seed 42 --out samples.csv --out samples.geojson.gz
  FIELDSAMP_FIELD_SAMPLES=50 fieldsamp generate --field.min_distance 20`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		config, err := loadConfig(cmd)
		if err != nil {
			log.Fatalln(err)
		}
		builder, err := api.NewBuilder(config)
		if err != nil {
			log.Fatalln(err)
		}

		var rng sampler.Rand
		if cmd.Flags().Changed("seed") {
			rng = sampler.NewRand(optSeed)
		} else {
			rng = sampler.NewUnseededRand()
		}

		set := builder.Build(rng)
		if optRegion {
			set.Region = lookupRegion(builder)
		}

		rep := set.Report
		logArgs := []any{
			"requested", rep.Requested,
			"accepted", rep.Accepted,
			"attempts", humanize.Comma(int64(rep.Attempts)),
			"rejections", humanize.Comma(int64(rep.Rejections)),
			"acceptance", fmt.Sprintf("%.2f%%", rep.AcceptanceRate()*100),
			"min.spacing.ft", humanize.FtoaWithDigits(rep.Spacing.Min, 2),
			"max.projection.error.ft", humanize.FtoaWithDigits(rep.MaxProjectionErrorFt, 3),
			"fingerprint", rep.Fingerprint,
		}
		if cmd.Flags().Changed("seed") {
			logArgs = append(logArgs, "seed", optSeed)
		}
		if set.Region != "" {
			logArgs = append(logArgs, "region", set.Region)
		}
		slog.Info("Generated samples", logArgs...)

		if len(optOut) == 0 {
			if err := export.WriteCSV(cmd.OutOrStdout(), set.Records); err != nil {
				log.Fatalln(err)
			}
			return
		}
		for _, path := range optOut {
			if err := writeOutput(path, set); err != nil {
				log.Fatalln(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().AddFlagSet(fieldFlags)
	generateCmd.Flags().Uint64Var(&optSeed, "seed", 0, "Seed for a reproducible run (unseeded if not set)")
	generateCmd.Flags().StringArrayVarP(&optOut, "out", "o", nil,
		`Output file, repeatable.
Format by extension: .csv, .geojson or .json, optionally with .gz.`)
	generateCmd.Flags().BoolVar(&optRegion, "region", false,
		"Reverse geocode the anchor to name its region (loads geocoding data, takes a few seconds)")
}

type outputFormat int

const (
	formatCSV outputFormat = iota
	formatGeoJSON
)

func outputFormatFor(path string) (outputFormat, error) {
	name := strings.TrimSuffix(strings.ToLower(path), ".gz")
	switch {
	case strings.HasSuffix(name, ".csv"):
		return formatCSV, nil
	case strings.HasSuffix(name, ".geojson"), strings.HasSuffix(name, ".json"):
		return formatGeoJSON, nil
	}
	return 0, fmt.Errorf("unknown output format for %q (want .csv, .geojson or .json)", path)
}

func writeOutput(path string, set *api.SampleSet) error {
	format, err := outputFormatFor(path)
	if err != nil {
		return err
	}
	f, err := export.Create(path, nil)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case formatCSV:
		err = export.WriteCSV(f, set.Records)
	case formatGeoJSON:
		err = export.WriteGeoJSON(f, set)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err == nil {
		slog.Info("Wrote samples", "path", path, "records", len(set.Records),
			"size", humanize.Bytes(uint64(info.Size())))
	}
	return nil
}

// lookupRegion names the anchor's region. Failures are logged, not fatal.
func lookupRegion(builder *api.Builder) string {
	g, err := rgeo.R()
	if err != nil {
		slog.Warn("Reverse geocoder unavailable", "error", err)
		return ""
	}
	region, err := rgeo.Region(g, builder.Frame().Origin())
	if err != nil {
		slog.Warn("Anchor region not found", "error", err)
		return ""
	}
	return region
}
