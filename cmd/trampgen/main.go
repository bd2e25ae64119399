// Command trampgen generates Go mirrors and callback trampolines for CEF C API
// structs from a YAML manifest.
//
//	trampgen --input capi.yaml --output zz_generated_capi.go
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "trampgen: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "trampgen",
		Usage: "generate CEF callback trampolines from a YAML manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input YAML manifest file (or - for stdin)",
				Value:   "capi.yaml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output Go file (or - for stdout)",
				Value:   "zz_generated_capi.go",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "fail if the output file is not up to date instead of writing it",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	input := c.String("input")

	var data []byte
	var err error
	if input == "-" {
		data, err = io.ReadAll(c.App.Reader)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return err
	}

	source := filepath.Base(input)
	if input == "-" {
		source = "stdin"
	}
	code, err := Generate(manifest, source)
	if err != nil {
		return fmt.Errorf("failed to generate: %w", err)
	}

	output := c.String("output")
	if output == "-" {
		_, err = c.App.Writer.Write(code)
		return err
	}

	if c.Bool("check") {
		current, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", output, err)
		}
		if string(current) != string(code) {
			return fmt.Errorf("%s is out of date; run go generate", output)
		}
		return nil
	}

	if err := os.WriteFile(output, code, 0644); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Generated: %s (%d structs)\n", output, len(manifest.Structs))
	return nil
}
