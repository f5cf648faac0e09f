package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/cmechlin/text-file-combiner/pkg/filelist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd groups the manifest-editing subcommands. The manifest is the
// persistent stand-in for the on-screen file table: add appends entries,
// move swaps two positions, show prints the current order.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage a YAML manifest of the ordered file list",
}

var listAddCmd = &cobra.Command{
	Use:   "add <manifest> <files...>",
	Short: "Append files to the manifest",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifestPath := args[0]

		m, err := loadOrEmptyManifest(manifestPath)
		if err != nil {
			return err
		}

		list := filelist.New(zap.L())
		for _, f := range m.Files {
			list.Append(f)
		}
		for _, f := range args[1:] {
			list.Append(f)
		}

		m.Files = list.Snapshot()
		if err := m.Save(manifestPath); err != nil {
			return err
		}
		return nil
	},
}

var listMoveCmd = &cobra.Command{
	Use:   "move <manifest> <from> <to>",
	Short: "Swap two positions in the manifest",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.L()
		manifestPath := args[0]

		from, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid from index %q: %w", args[1], err)
		}
		to, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid to index %q: %w", args[2], err)
		}

		m, err := filelist.LoadManifest(manifestPath)
		if err != nil {
			return fmt.Errorf("failed to load list manifest: %w", err)
		}

		list := filelist.New(logger)
		for _, f := range m.Files {
			list.Append(f)
		}
		if !list.Move(from, to) {
			logger.Warn("Ignored reorder outside list bounds",
				zap.Int("from", from),
				zap.Int("to", to),
				zap.Int("length", list.Len()))
			return nil
		}

		m.Files = list.Snapshot()
		return m.Save(manifestPath)
	},
}

var listShowCmd = &cobra.Command{
	Use:   "show <manifest>",
	Short: "Print the manifest entries in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := filelist.LoadManifest(args[0])
		if err != nil {
			return fmt.Errorf("failed to load list manifest: %w", err)
		}
		for i, f := range m.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i, filelist.DisplayName(f), f)
		}
		return nil
	},
}

// loadOrEmptyManifest loads the manifest at path, starting fresh when the
// file does not exist yet so add can bootstrap a new list.
func loadOrEmptyManifest(path string) (*filelist.Manifest, error) {
	m, err := filelist.LoadManifest(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &filelist.Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to load list manifest: %w", err)
	}
	return m, nil
}

func init() {
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listMoveCmd)
	listCmd.AddCommand(listShowCmd)
	RootCmd.AddCommand(listCmd)
}
