// Command draftmd converts raw Draft.js JSON to markdown.
//
// It reads the `convertToRaw` wire format from a file or stdin, renders
// it with the draftmd library, and writes the result to stdout or a file.
// Rendering can be tuned with flags or a YAML configuration file, and the
// produced markdown can optionally be rendered on to HTML.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	draftmd "github.com/riverfjs/draftmd-go"
)

// CLI defines the command-line interface for draftmd.
var CLI struct {
	Input  string `arg:"" optional:"" help:"Raw Draft.js JSON file (defaults to stdin)." type:"existingfile"`
	Output string `short:"o" help:"Write the result to a file instead of stdout." type:"path"`
	Config string `short:"c" help:"YAML render configuration file." type:"existingfile"`

	EmptyLines   bool `help:"Separate blocks with a blank line."`
	BreakLiteral bool `help:"Emit literal backslash-n tokens instead of real newlines between blocks."`
	RawCSS       bool `help:"Recognize JSON-object style names as raw CSS inline styles."`
	HTML         bool `help:"Render the markdown output on to HTML."`
}

// fileConfig is the YAML shape of --config. It carries the render
// configuration plus the hashtag detection overrides.
type fileConfig struct {
	draftmd.Config `yaml:",inline"`
	Hashtag        draftmd.HashConfig `yaml:"hashtag"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("draftmd"),
		kong.Description("Convert raw Draft.js JSON to markdown."),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	raw, err := readInput(CLI.Input)
	if err != nil {
		return err
	}

	cfg, hash, err := loadConfig(CLI.Config)
	if err != nil {
		return err
	}
	if CLI.EmptyLines {
		cfg.EmptyLineBeforeBlock = true
	}
	if CLI.BreakLiteral {
		cfg.PrintBreakLineLiteral = true
	}
	if CLI.RawCSS {
		cfg.RawCSSInlineStyles = true
	}

	out, err := draftmd.ConvertJSON(raw,
		draftmd.WithConfig(cfg),
		draftmd.WithHashConfig(hash),
	)
	if err != nil {
		return err
	}

	if CLI.HTML {
		out, err = renderHTML(out)
		if err != nil {
			return err
		}
	}
	return writeOutput(CLI.Output, out)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// loadConfig reads the YAML configuration file. A missing path yields the
// defaults.
func loadConfig(path string) (*draftmd.Config, draftmd.HashConfig, error) {
	if path == "" {
		return &draftmd.Config{}, draftmd.HashConfig{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, draftmd.HashConfig{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, draftmd.HashConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg := fc.Config
	return &cfg, fc.Hashtag, nil
}

// renderHTML renders the produced markdown to HTML with goldmark and the
// GFM extension (strikethrough in particular).
func renderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func writeOutput(path, out string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, out)
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}
