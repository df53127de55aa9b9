package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"horse.fit/translategw/internal/langdetect"
)

func runDetect(args []string) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	format := fs.String("format", outputFormatText, "Output format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	outputFormat, err := parseOutputFormat(*format, outputFormatText, outputFormatText, outputFormatJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "Usage: translategw detect [--format text|json] <text>")
		return 2
	}

	result, ok := langdetect.Detect(text)
	if err := renderDetection(os.Stdout, result, ok, outputFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

func renderDetection(out io.Writer, result langdetect.Result, ok bool, format string) error {
	if format == outputFormatJSON {
		if !ok {
			return printJSON(out, map[string]any{"detected": false, "language": nil})
		}
		return printJSON(out, map[string]any{
			"detected":   true,
			"language":   result.Language,
			"name":       result.Name,
			"confidence": result.Confidence,
		})
	}

	if !ok {
		_, err := fmt.Fprintln(out, "unknown")
		return err
	}
	_, err := fmt.Fprintf(out, "%s (%s, confidence %.2f)\n", result.Language, strings.ToLower(result.Name), result.Confidence)
	return err
}
