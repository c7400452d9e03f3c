package cmd

import (
	"errors"
	"fmt"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/memimage"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/transcript"
	"github.com/Manu343726/rvdecode/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	disasmStart    uint64
	disasmCount    int
	disasmCapacity uint64
	disasmBase     uint64
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <elf>",
	Short: "Disassemble a RISC-V ELF64 executable",
	Long: `Loads a RISC-V ELF64 executable into memory and decodes the instruction stream starting
at the entry point (or --start), one instruction after another, until --count instructions have
been decoded or the end of memory is reached.

Example:
  rvdecode disasm rv64ui-p-add
  rvdecode disasm --start 0x80000100 --count 16 -o yaml program.elf`,
	Args: cobra.ExactArgs(1),
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

		image, err := memimage.LoadELF(args[0], disasmCapacity, memimage.Options{
			Base:   disasmBase,
			Logger: Logger,
		})
		if err != nil {
			return err
		}

		address := image.Entry
		if cmd.Flags().Changed("start") {
			address = disasmStart
		}

		Logger.Debug("disassembling", "file", args[0], "start", fmt.Sprintf("0x%x", address), "count", disasmCount)

		results := make([]transcript.Result, 0)
		failed := 0

		for i := 0; disasmCount <= 0 || i < disasmCount; i++ {
			word, _, err := image.Fetch(address)
			if errors.Is(err, memimage.ErrOutOfBounds) {
				Logger.Debug("reached the end of memory", "address", fmt.Sprintf("0x%x", address))
				break
			} else if err != nil {
				return err
			}

			inst, length, decodeErr := d.Decode(word)
			results = append(results, transcript.FromDecode(word, inst, length, decodeErr))

			if decodeErr != nil {
				failed++
			}

			if format == OutputFormat_Text {
				if name, ok := image.SymbolAt(address); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "\n%016x <%v>:\n", address, name)
				}

				var text string
				if decodeErr != nil {
					text = fmt.Sprintf("error: %v", decodeErr)
				} else {
					text = formatter.Format(inst)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%8x:\t%-8v\t%v\n", address, fmt.Sprintf("%0*x", 2*length, uint64(word)&lengthMask(length)), text)
			}

			address += uint64(length)
		}

		if format != OutputFormat_Text {
			if err := writeStructured(cmd.OutOrStdout(), format, results); err != nil {
				return err
			}
		}

		if failed > 0 {
			return utils.MakeError(errDecodingFailed, "%v of %v instructions failed", failed, len(results))
		}

		return nil
	},
}

func init() {
	disasmCmd.Flags().Uint64Var(&disasmStart, "start", 0, "Address to start decoding at (default: the ELF entry point)")
	disasmCmd.Flags().IntVarP(&disasmCount, "count", "n", 0, "Maximum number of instructions to decode (0 = until the end of memory)")
	disasmCmd.Flags().Uint64Var(&disasmCapacity, "capacity", 0x100000, "Memory size in bytes")
	disasmCmd.Flags().Uint64Var(&disasmBase, "base", memimage.DefaultBase, "Physical address memory starts at")
}
