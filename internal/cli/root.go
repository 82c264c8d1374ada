// Package cli contains the commands of the terminal quiz.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "quiz",
	Short: "quiz is a periodic table quiz: name the element behind the symbol.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "welcome to the periodic table quiz, use `quiz -h` for help")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version shows the quiz version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
