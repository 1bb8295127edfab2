// Command download manages the playthroughs uploaded by players. It pulls
// them from the database into local files and checks that a new version of
// the World still plays them out the same way.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "download",
	Short:        "Download and check recorded tetris1 playthroughs",
	SilenceUsage: true,
}

var emph = color.New(color.FgBlue, color.Bold).SprintFunc()
var good = color.New(color.FgGreen).SprintFunc()
var warn = color.New(color.FgRed, color.Bold).SprintFunc()

func init() {
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(regressionCmd)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
