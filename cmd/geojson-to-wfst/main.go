package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/ogc-tools/geojson-to-wfst/config"
	"github.com/ogc-tools/geojson-to-wfst/geometry"
	"github.com/ogc-tools/geojson-to-wfst/gml"
	"github.com/ogc-tools/geojson-to-wfst/internal"
	"github.com/ogc-tools/geojson-to-wfst/server"
	"github.com/ogc-tools/geojson-to-wfst/wfs"
)

type Options struct {
	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to configuration file"            default:"config.yml"`
	Mode       string `short:"m" long:"mode"    description:"Run mode"                  choice:"convert" choice:"serve" default:"convert"`
	Action     string `short:"a" long:"action"  description:"What to build in convert mode" choice:"gml" choice:"insert" choice:"update" choice:"delete" choice:"transaction" default:"gml"`
	Dialect    string `short:"d" long:"dialect" description:"GML dialect for -a gml"    choice:"simple" choice:"3.2"`
	Layer      string `short:"l" long:"layer"   description:"Layer name from config.layers[]"`
	Input      string `short:"i" long:"input"   description:"Input GeoJSON file (defaults to stdin)"`
	SrsName    string `long:"srs-name"          description:"Coordinate reference system identifier"`
	GmlID      string `long:"gml-id"            description:"gml:id for the outermost element (-a gml)"`
	LogLevel   string `long:"log-level"         env:"LOG_LEVEL" description:"Log level" default:"info"`
	LogJSON    bool   `long:"log-json"          env:"LOG_JSON"  description:"Log as JSON instead of console output"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	internal.InitLogging(opts.LogLevel, opts.LogJSON)

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		if opts.Mode == "serve" {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
		// one-shot conversion works without a config file
		log.Debug().Err(err).Msg("no configuration loaded, using defaults")
		cfg = config.AppConfig{}
		cfg.ApplyDefaults()
	}

	switch opts.Mode {
	case "serve":
		srv := server.New(cfg)
		srv.Start()
		srv.WaitForShutdown()
	case "convert":
		out, err := convert(opts, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("conversion failed")
		}
		fmt.Println(out)
	}
}

func convert(opts Options, cfg config.AppConfig) (string, error) {
	input, err := readInput(opts.Input)
	if err != nil {
		return "", err
	}

	srsName := opts.SrsName
	if srsName == "" {
		srsName = cfg.Defaults.SrsName
	}

	if opts.Action == "gml" {
		g, err := geometry.Decode(input)
		if err != nil {
			return "", err
		}
		dialect := opts.Dialect
		if dialect == "" {
			dialect = cfg.Defaults.Dialect
		}
		p := gml.Params{
			SrsName:      srsName,
			SrsDimension: cfg.Defaults.SrsDimension,
			GmlID:        opts.GmlID,
		}
		if dialect == "simple" {
			return gml.EncodeSimple(g, p)
		}
		return gml.Encode32(g, p)
	}

	layer, ok := cfg.SelectLayer(opts.Layer)
	if !ok {
		layer = config.LayerConfig{Name: opts.Layer}
	}
	decoded, err := geometry.DecodeFeatureCollection(input)
	if err != nil {
		return "", err
	}
	features := make([]wfs.Feature, 0, len(decoded))
	for _, f := range decoded {
		features = append(features, wfs.Feature{
			ID:         f.ID,
			Geometry:   f.Geometry,
			Properties: f.Properties,
			Layer:      layer.Name,
		})
	}

	p := wfs.Params{
		Ns:              layer.Ns,
		Layer:           layer.Name,
		TypeName:        layer.TypeName,
		GeometryName:    layer.GeometryName,
		Whitelist:       layer.Whitelist,
		SrsName:         srsName,
		SrsDimension:    cfg.Defaults.SrsDimension,
		Version:         cfg.Defaults.Version,
		NsAssignments:   cfg.Namespaces,
		SchemaLocations: cfg.SchemaLocations,
	}

	bd := wfs.NewBuilder()
	defer bd.LogWarnings(layer.Name)
	switch opts.Action {
	case "insert":
		return bd.Insert(features, p)
	case "update":
		return bd.Update(features, p)
	case "delete":
		return bd.Delete(features, p)
	default:
		return bd.Transaction(wfs.TransactionGroup{Insert: features}, p)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
