package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cmechlin/text-file-combiner/pkg/combiner"
	"github.com/cmechlin/text-file-combiner/pkg/config"
	"github.com/cmechlin/text-file-combiner/pkg/filelist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	combineOutput string
	combineList   string
	combineMoves  []string
)

// combineCmd materializes the current file list into a single output file.
// Files come from positional arguments, a YAML manifest, or both (manifest
// entries first). --move applies reorder gestures before combining.
var combineCmd = &cobra.Command{
	Use:   "combine [files...]",
	Short: "Combine the listed files into a single output file",
	Long: `Combine reads every file in list order and writes one block per file to the
output: a separator line, the source path, another separator line, the file
content, and a blank line. Files that cannot be read are logged and their
block is emitted without content; the combination continues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.L()

		cfgPath, err := configPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		list, err := buildList(args, combineList, logger)
		if err != nil {
			return err
		}

		for _, gesture := range combineMoves {
			from, to, err := parseMove(gesture)
			if err != nil {
				return err
			}
			if !list.Move(from, to) {
				logger.Warn("Ignored reorder outside list bounds",
					zap.Int("from", from),
					zap.Int("to", to),
					zap.Int("length", list.Len()))
			}
		}

		output := combineOutput
		if output == "" {
			output = filepath.Join(cfg.OutputDir, combiner.DefaultOutputName(time.Now()))
		}

		c := combiner.New(logger)
		if err := c.CombineToFile(list.Snapshot(), output); err != nil {
			return fmt.Errorf("combine failed: %w", err)
		}

		// Remember where the output went, like the original GUI did.
		cfg.LastDirectory = filepath.Dir(output)
		if err := cfg.Save(cfgPath); err != nil {
			logger.Warn("Failed to persist settings", zap.String("config", cfgPath), zap.Error(err))
		}
		return nil
	},
}

// buildList assembles a file list from a manifest and positional arguments.
// Manifest entries keep their saved order and precede the arguments.
func buildList(args []string, manifestPath string, logger *zap.Logger) (*filelist.List, error) {
	list := filelist.New(logger)
	if manifestPath != "" {
		m, err := filelist.LoadManifest(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load list manifest: %w", err)
		}
		for _, f := range m.Files {
			list.Append(f)
		}
	}
	for _, f := range args {
		list.Append(f)
	}
	return list, nil
}

// parseMove parses a reorder gesture of the form "from:to".
func parseMove(gesture string) (int, int, error) {
	fromStr, toStr, ok := strings.Cut(gesture, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid move %q: expected from:to", gesture)
	}
	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid move %q: %w", gesture, err)
	}
	to, err := strconv.Atoi(toStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid move %q: %w", gesture, err)
	}
	return from, to, nil
}

func init() {
	combineCmd.Flags().StringVarP(&combineOutput, "output", "o", "", "Output file path (default: combined_<YYYYMMDD>.txt in the configured output dir)")
	combineCmd.Flags().StringVarP(&combineList, "list", "l", "", "YAML manifest providing the ordered file list")
	combineCmd.Flags().StringArrayVar(&combineMoves, "move", nil, "Swap two list positions before combining, as from:to (repeatable)")
	RootCmd.AddCommand(combineCmd)
}
