package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/jaxydog/ochre/jsonconv"
	"github.com/jaxydog/ochre/jsonval"
	"github.com/jaxydog/ochre/yamlconv"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "ochre CLI\n\nUsage:\n  ochre check -format json|yaml -type bool|int|float|string|time|duration [-list] [file]\n\nReads a document from file (or stdin) and round-trips it through the\nselected converter, reporting any failure with its full context chain.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var format string
	var typeName string
	var list bool
	fs.StringVar(&format, "format", "json", "document format (json or yaml)")
	fs.StringVar(&typeName, "type", "string", "element type to convert through")
	fs.BoolVar(&list, "list", false, "treat the document as a list of the element type")
	_ = fs.Parse(args)

	data, err := readInput(fs.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read input")
	}

	switch format {
	case "json":
		err = checkJSON(data, typeName, list)
	case "yaml":
		err = checkYAML(data, typeName, list)
	default:
		log.Fatal().Str("format", format).Msg("unknown format")
	}
	if err != nil {
		log.Fatal().Err(err).Str("type", typeName).Msg("check failed")
	}
	log.Info().Str("format", format).Str("type", typeName).Msg("document checked")
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func checkJSON(data []byte, typeName string, list bool) error {
	doc, err := jsonval.Decode(data)
	if err != nil {
		return err
	}
	switch typeName {
	case "bool":
		return roundTripJSON(jsonconv.NewBool(), doc, list)
	case "int":
		return roundTripJSON(jsonconv.NewInt64(), doc, list)
	case "float":
		return roundTripJSON(jsonconv.NewFloat64(), doc, list)
	case "string":
		return roundTripJSON(jsonconv.NewString(), doc, list)
	case "time":
		return roundTripJSON(jsonconv.NewTimeRFC3339(), doc, list)
	case "duration":
		return roundTripJSON(jsonconv.NewDuration(), doc, list)
	default:
		return fmt.Errorf("unknown element type %q", typeName)
	}
}

func roundTripJSON[T any](c jsonconv.Converter[T], doc *jsonval.Value, list bool) error {
	var back *jsonval.Value
	var err error
	if list {
		lc := jsonconv.List(c)
		var values []T
		if values, err = lc.From(doc); err == nil {
			log.Debug().Int("elements", len(values)).Msg("decoded list")
			back, err = lc.Into(values)
		}
	} else {
		var value T
		if value, err = c.From(doc); err == nil {
			back, err = c.Into(value)
		}
	}
	if err != nil {
		return err
	}
	if !jsonval.Equal(doc, back) {
		encoded, eerr := jsonval.Encode(back)
		if eerr != nil {
			return eerr
		}
		log.Warn().Str("canonical", string(encoded)).Msg("document round-trips to a different canonical form")
	}
	return nil
}

func checkYAML(data []byte, typeName string, list bool) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return fmt.Errorf("empty document")
	}
	root := doc.Content[0]
	switch typeName {
	case "bool":
		return roundTripYAML(yamlconv.NewBool(), root, list)
	case "int":
		return roundTripYAML(yamlconv.NewInt64(), root, list)
	case "float":
		return roundTripYAML(yamlconv.NewFloat64(), root, list)
	case "string":
		return roundTripYAML(yamlconv.NewString(), root, list)
	default:
		return fmt.Errorf("unknown element type %q for yaml", typeName)
	}
}

func roundTripYAML[T any](c yamlconv.Converter[T], root *yaml.Node, list bool) error {
	if list {
		lc := yamlconv.List(c)
		values, err := lc.From(root)
		if err != nil {
			return err
		}
		log.Debug().Int("elements", len(values)).Msg("decoded sequence")
		_, err = lc.Into(values)
		return err
	}
	value, err := c.From(root)
	if err != nil {
		return err
	}
	_, err = c.Into(value)
	return err
}
