package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LdDl/osm2graph"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	cfgFileName     = flag.String("config", "", "YAML file with allowed highway types and default max speed")
	tagStr          = flag.String("tags", "", "Set of needed highway tags (separated by commas). Overrides configuration file")
	defaultMaxSpeed = flag.Int("maxspeed", 0, "Max speed for ways without (or with unparsable) `maxspeed` tag. Overrides configuration file")
	geomFileName    = flag.String("geom", "", "Filename of 'Comma-Separated Values' (CSV) formatted file with edges geometry. Not written if empty")
	geomFormat      = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	verbose         = flag.Bool("verbose", false, "Print debug information")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.osm output.graph output.node_mapping\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  input.osm: exported OSM data (*.osm, *.xml or *.osm.pbf)\n")
	fmt.Fprintf(os.Stderr, "  output.graph: generated graph\n")
	fmt.Fprintf(os.Stderr, "  output.node_mapping: maps each used OSM node ID onto graph node ID\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	err = run(logger, flag.Arg(0), flag.Arg(1), flag.Arg(2))
	if err != nil {
		logger.Error("Conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	fmt.Println("Finished")
}

func run(logger *zap.Logger, input, graphOutput, mappingOutput string) error {
	cfg := osm2graph.DefaultConfiguration()
	var err error
	if *cfgFileName != "" {
		cfg, err = osm2graph.LoadConfiguration(*cfgFileName)
		if err != nil {
			return err
		}
	}
	err = applyOverrides(cfg, *tagStr, *defaultMaxSpeed, flag.CommandLine.Changed("maxspeed"))
	if err != nil {
		return err
	}

	options := []func(*osm2graph.Converter){
		osm2graph.WithConfiguration(cfg),
		osm2graph.WithLogger(logger),
	}
	if *geomFileName != "" {
		format, err := osm2graph.ParseGeometryFormat(*geomFormat)
		if err != nil {
			return err
		}
		options = append(options, osm2graph.WithGeometryExport(*geomFileName, format))
	}
	conv := osm2graph.NewConverter(options...)
	logger.Debug(conv.String())

	st := time.Now()
	stats, err := conv.ConvertFile(context.Background(), input, graphOutput, mappingOutput)
	if err != nil {
		return err
	}
	fmt.Printf("Nodes: %d\n", stats.UsedNodes)
	fmt.Printf("Edges: %d\n", stats.Edges)
	fmt.Printf("Ways without max: %d\n", stats.WaysWithoutMaxSpeed)
	fmt.Printf("Skipped nodes: %d\n", stats.NodesSkipped)
	logger.Info("Done", zap.Duration("elapsed", time.Since(st)))
	return nil
}

// applyOverrides replaces configuration values with the ones given by flags
func applyOverrides(cfg *osm2graph.Configuration, tags string, maxSpeed int, maxSpeedSet bool) error {
	if tags != "" {
		values := strings.Split(tags, ",")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		highways, err := osm2graph.ParseHighwayTypes(values)
		if err != nil {
			return err
		}
		cfg.Highways = highways
	}
	if maxSpeedSet {
		if maxSpeed <= 0 {
			return errors.Errorf("Max speed should be positive, got %d", maxSpeed)
		}
		cfg.DefaultMaxSpeed = maxSpeed
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	// Every skipped node has to be reported
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
