package cmd

import (
	"fmt"

	"github.com/cmechlin/text-file-combiner/pkg/combiner"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showIndex int
	showList  string
)

// showCmd previews a single entry without combining anything. It reads the
// file the same way combine does, so failures are reported identically.
var showCmd = &cobra.Command{
	Use:   "show [files...]",
	Short: "Print the content of one entry in the file list",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.L()

		list, err := buildList(args, showList, logger)
		if err != nil {
			return err
		}

		snapshot := list.Snapshot()
		if showIndex < 0 || showIndex >= len(snapshot) {
			return fmt.Errorf("index %d out of range for list of %d files", showIndex, len(snapshot))
		}

		content, err := combiner.New(logger).ReadFile(snapshot[showIndex])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showIndex, "index", "i", 0, "List position to show (0-based)")
	showCmd.Flags().StringVarP(&showList, "list", "l", "", "YAML manifest providing the ordered file list")
	RootCmd.AddCommand(showCmd)
}
