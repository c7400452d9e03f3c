package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/decoder"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/transcript"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputFormat_Text OutputFormat = "text"
	OutputFormat_Yaml OutputFormat = "yaml"
	OutputFormat_Json OutputFormat = "json"
)

func outputFormat() (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(viper.GetString("output"))); format {
	case OutputFormat_Text, OutputFormat_Yaml, OutputFormat_Json:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format '%v', expected text, yaml or json", format)
	}
}

// Decides whether to color output written to f from the color setting
func useColor(f *os.File) (bool, error) {
	switch mode := strings.ToLower(viper.GetString("color")); mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode '%v', expected auto, always or never", mode)
	}
}

func newDecoder() (*decoder.Decoder, error) {
	strategy, err := decoder.ParseStrategy(viper.GetString("strategy"))
	if err != nil {
		return nil, err
	}

	Logger.Debug("using compressed decoding strategy", "strategy", strategy)
	return decoder.New(strategy), nil
}

func newFormatter() (*transcript.Formatter, error) {
	colored, err := useColor(os.Stdout)
	if err != nil {
		return nil, err
	}

	return transcript.NewFormatter(colored), nil
}

// Parses an instruction word given in any Go integer literal syntax (0x13, 0b1_0011, 19)
func parseWord(text string, bits int) (uint64, error) {
	value, err := strconv.ParseUint(text, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid %v bit word '%v': %w", bits, text, err)
	}

	return value, nil
}

// Writes values as a YAML or JSON document
func writeStructured(w io.Writer, format OutputFormat, values any) error {
	switch format {
	case OutputFormat_Yaml:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(values)
	case OutputFormat_Json:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(values)
	default:
		return fmt.Errorf("output format '%v' is not structured", format)
	}
}
