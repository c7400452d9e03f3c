package cmd

import (
	"fmt"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/compressed"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/Manu343726/rvdecode/pkg/utils"
	"github.com/spf13/cobra"
)

// Outcome of expanding one compressed halfword
type expansion struct {
	Halfword  uint16  `yaml:"halfword" json:"halfword"`
	Form      string  `yaml:"form,omitempty" json:"form,omitempty"`
	Condition string  `yaml:"condition,omitempty" json:"condition,omitempty"`
	Policy    string  `yaml:"policy,omitempty" json:"policy,omitempty"`
	Expansion *uint32 `yaml:"expansion,omitempty" json:"expansion,omitempty"`
}

func expand(hw uint16) expansion {
	result := expansion{Halfword: hw}

	if form := compressed.Classify(hw); form != nil {
		result.Form = form.Mnemonic
		result.Condition = form.Condition
		result.Policy = form.Policy.String()
	}

	if word := compressed.Expand(hw); word != compressed.InvalidExpansion {
		result.Expansion = &word
	}

	return result
}

var expandCmd = &cobra.Command{
	Use:   "expand <halfword>...",
	Short: "Expand compressed instructions to their standard 32 bit equivalent",
	Long: `Expands each compressed (RVC) halfword to the standard instruction it stands for, and
shows the compressed form it was classified as.

Reserved encodings, HINTs and halfwords with no mapping have no expansion.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}

		results := make([]expansion, 0, len(args))
		failed := 0

		for _, arg := range args {
			hw, err := parseWord(arg, 16)
			if err != nil {
				return err
			}

			result := expand(uint16(hw))
			results = append(results, result)

			if result.Expansion == nil {
				failed++
			}

			if format != OutputFormat_Text {
				continue
			}

			form := "no mapping"
			if result.Form != "" {
				form = fmt.Sprintf("%v (%v)", result.Form, result.Policy)
			}

			if result.Expansion == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%04x  %-24v no expansion\n", hw, form)
				continue
			}

			var text string
			if inst, err := instructions.Decode(*result.Expansion); err == nil {
				text = formatter.Format(inst)
			} else {
				text = err.Error()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%04x  %-24v %08x  %v\n", hw, form, *result.Expansion, text)
		}

		if format != OutputFormat_Text {
			if err := writeStructured(cmd.OutOrStdout(), format, results); err != nil {
				return err
			}
		}

		if failed > 0 {
			return utils.MakeError(errDecodingFailed, "%v of %v halfwords have no expansion", failed, len(args))
		}

		return nil
	},
}
