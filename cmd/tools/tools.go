package tools

import (
	"github.com/spf13/cobra"
)

// ToolsCmd groups the commands that document the decoder itself
var ToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "rvdecode miscellaneous tools",
}
