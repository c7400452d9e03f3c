package cmd

import (
	"fmt"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/transcript"
	"github.com/Manu343726/rvdecode/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var decodeDump bool

var decodeCmd = &cobra.Command{
	Use:   "decode <word>...",
	Short: "Decode instruction words",
	Long: `Decodes each instruction word and prints its disassembly together with the record of
the registers it reads and writes.

Words whose two lowest bits are not 11 are compressed: only their lower 16 bits are decoded.
Words can be written in any Go integer literal syntax (0x0005b503, 0b0110_0001_1000_1000, 19).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		d, err := newDecoder()
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}

		results := make([]transcript.Result, 0, len(args))
		failed := 0

		for _, arg := range args {
			word, err := parseWord(arg, 32)
			if err != nil {
				return err
			}

			inst, length, decodeErr := d.Decode(uint32(word))
			result := transcript.FromDecode(uint32(word), inst, length, decodeErr)
			results = append(results, result)

			if decodeErr != nil {
				failed++
				Logger.Info("failed to decode word", "word", arg, "error", decodeErr)
			}

			if format != OutputFormat_Text {
				continue
			}

			if decodeErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%0*x  error: %v\n", 2*length, word&lengthMask(length), decodeErr)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%0*x  %v\n", 2*length, word&lengthMask(length), formatter.Format(inst))
				fmt.Fprintf(cmd.OutOrStdout(), "%*s  %v\n", 2*length, "", result.Inst)
			}

			if decodeDump && inst != nil {
				fmt.Fprint(cmd.OutOrStdout(), spew.Sdump(inst))
			}
		}

		if format != OutputFormat_Text {
			if err := writeStructured(cmd.OutOrStdout(), format, results); err != nil {
				return err
			}
		}

		if failed > 0 {
			return utils.MakeError(errDecodingFailed, "%v of %v words failed", failed, len(args))
		}

		return nil
	},
}

func lengthMask(length int) uint64 {
	if length == 2 {
		return 0xffff
	}

	return 0xffffffff
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeDump, "dump", false, "Dump the decoded instruction value")
}
