package tools

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/isa"
	"github.com/Manu343726/rvdecode/pkg/utils"
	"github.com/spf13/cobra"
)

var formColumns []string

var supportedModules = map[string]func() (string, error){
	"rv64":                    func() (string, error) { return isa.RV64.Documentation(0) },
	"rv64.opcodes":            func() (string, error) { return isa.RV64.OpCodesDocumentation(0), nil },
	"rv64.formats":            func() (string, error) { return isa.RV64.LayoutsDocumentation(0) },
	"rv64.compressed.formats": func() (string, error) { return isa.RV64.CompressedLayoutsDocumentation(0) },
	"rv64.compressed.forms":   func() (string, error) { return isa.RV64.FormsTable(formColumns) },
}

func moduleNames() []string {
	names := utils.Keys(supportedModules)
	slices.Sort(names)
	return names
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show rvdecode documentation",
	Long: `Dumps the documentation of the specified rvdecode module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --file flag.

Supported modules:
` + strings.Join(utils.Map(moduleNames(), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: moduleNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := supportedModules[args[0]]()
		if err != nil {
			return err
		}

		outputFile, _ := cmd.Flags().GetString("file")
		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating documentation file: %w", err)
		}
		defer file.Close()

		_, err = fmt.Fprintln(file, doc)
		return err
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("file", "f", "", "Output file. If not specified, the documentation is dumped to stdout.")
	docsCmd.Flags().StringSliceVar(&formColumns, "columns", isa.DefaultFormColumns, "Columns of the rv64.compressed.forms table (fields of a compressed form)")
}
