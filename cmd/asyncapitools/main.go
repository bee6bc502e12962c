package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/erraggy/asyncapitools"
	"github.com/erraggy/asyncapitools/internal/mcpserver"
	"github.com/erraggy/asyncapitools/parser"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("asyncapitools v%s\n", asyncapitools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := handleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// parseFlags contains flags for the parse command
type parseFlags struct {
	full bool
}

func setupParseFlags() (*flag.FlagSet, *parseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &parseFlags{}

	fs.BoolVar(&flags.full, "full", false, "print the full parsed document as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: asyncapitools parse [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Parse and output AsyncAPI document structure.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  asyncapitools parse asyncapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  asyncapitools parse --full streetlights.json\n")
	}

	return fs, flags
}

func handleParse(args []string) error {
	fs, flags := setupParseFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path")
	}

	specPath := fs.Arg(0)

	result, err := parser.New().Parse(specPath)
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	fmt.Printf("AsyncAPI Definition Parser\n")
	fmt.Printf("==========================\n\n")
	fmt.Printf("asyncapitools version: %s\n", asyncapitools.Version())
	fmt.Printf("Definition: %s\n", specPath)
	fmt.Printf("AsyncAPI Version: %s\n", result.Version)
	fmt.Printf("Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	fmt.Printf("Servers: %d\n", result.Stats.ServerCount)
	fmt.Printf("Channels: %d\n", result.Stats.ChannelCount)
	fmt.Printf("Operations: %d\n", result.Stats.OperationCount)
	fmt.Printf("Messages: %d\n", result.Stats.MessageCount)
	fmt.Printf("Schemas: %d\n", result.Stats.SchemaCount)
	fmt.Printf("Load Time: %v\n\n", result.LoadTime)

	doc := result.Document
	if doc.Info != nil {
		fmt.Printf("Title: %s\n", doc.Info.Title)
		if doc.Info.Description != "" {
			fmt.Printf("Description: %s\n", doc.Info.Description)
		}
		fmt.Printf("Version: %s\n", doc.Info.Version)
	}
	if doc.DefaultContentType != "" {
		fmt.Printf("Default Content Type: %s\n", doc.DefaultContentType)
	}
	for name, s := range doc.Servers.All() {
		fmt.Printf("Server %s: %s (%s)\n", name, s.URL, s.Protocol)
	}

	if flags.full {
		data, err := result.MarshalJSONIndent("", "  ")
		if err != nil {
			return fmt.Errorf("marshaling to JSON: %w", err)
		}
		fmt.Printf("\nDocument (JSON):\n")
		fmt.Println(string(data))
	}

	fmt.Printf("\nParsing completed successfully!\n")
	return nil
}

// convertFlags contains flags for the convert command
type convertFlags struct {
	target string
	output string
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{}

	fs.StringVar(&flags.target, "t", "", "target format: json or yaml")
	fs.StringVar(&flags.target, "target", "", "target format: json or yaml")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: asyncapitools convert -t <json|yaml> [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Convert an AsyncAPI document between JSON and YAML, preserving key order.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  asyncapitools convert -t json asyncapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  asyncapitools convert -t yaml -o asyncapi.yaml asyncapi.json\n")
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path")
	}

	target := strings.ToLower(flags.target)
	if target != "json" && target != "yaml" {
		fs.Usage()
		return fmt.Errorf("target format is required: json or yaml (use -t or --target)")
	}

	result, err := parser.New().Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	var data []byte
	if target == "json" {
		data, err = result.MarshalJSONIndent("", "  ")
	} else {
		data, err = result.MarshalYAML()
	}
	if err != nil {
		return fmt.Errorf("marshaling converted document: %w", err)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, 0o600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Output written to: %s\n", flags.output)
	} else {
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
	}
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`asyncapitools - AsyncAPI Definition Tools

Usage:
  asyncapitools <command> [options]

Commands:
  parse       Parse and display an AsyncAPI definition file
  convert     Convert an AsyncAPI definition between JSON and YAML
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  asyncapitools parse asyncapi.yaml
  asyncapitools parse --full streetlights.json
  asyncapitools convert -t json -o asyncapi.json asyncapi.yaml
  asyncapitools mcp

Run 'asyncapitools <command> --help' for more information on a command.`)
}
