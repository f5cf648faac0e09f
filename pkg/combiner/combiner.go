// Package combiner turns an ordered list of file paths into a single output
// stream of separator-delimited blocks.
package combiner

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Separator is the header line between blocks in the combined output:
// exactly 72 '*' characters.
var Separator = strings.Repeat("*", 72)

// Combiner reads source files and writes them into one output stream. It
// keeps no state between calls; each Combine is a fresh sequential pass.
type Combiner struct {
	logger *zap.Logger
}

// New creates a Combiner. A nil logger disables logging.
func New(logger *zap.Logger) *Combiner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Combiner{logger: logger}
}

// ReadFile returns the content of path as text, decoded as UTF-8 on a
// best-effort basis. On failure the returned error is a *FileError carrying
// the category, and the failure has already been logged; callers are
// expected to continue rather than abort.
func (c *Combiner) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		ferr := classify(path, err)
		c.logger.Error("Failed to read file",
			zap.String("path", path),
			zap.String("category", ferr.Kind.String()),
			zap.Error(err))
		return "", ferr
	}
	return string(data), nil
}

// Combine writes one block per path to w, in list order. Each block is the
// separator line, the path, the separator line again, the file content, and
// a blank line. A path that cannot be read still gets its block, just with
// no content, and the pass continues. A write failure on w is fatal: it is
// logged once and returned as a *FileError, leaving the output as far as it
// got.
func (c *Combiner) Combine(paths []string, w io.Writer) error {
	writer := bufio.NewWriter(w)

	for _, path := range paths {
		content, err := c.ReadFile(path)
		if err != nil {
			content = "" // block is still emitted, body stays absent
		}

		if _, err := writer.WriteString(Separator + "\n" + path + "\n" + Separator + "\n"); err != nil {
			return c.sinkError(err)
		}
		if _, err := writer.WriteString(content); err != nil {
			return c.sinkError(err)
		}
		if _, err := writer.WriteString("\n\n"); err != nil {
			return c.sinkError(err)
		}
	}

	if err := writer.Flush(); err != nil {
		return c.sinkError(err)
	}

	c.logger.Info("Files combined successfully", zap.Int("fileCount", len(paths)))
	return nil
}

// CombineToFile opens (or truncates) outputPath and combines paths into it.
// An empty list still produces the file, just with no blocks. Failures to
// open the output are classified with the same taxonomy as reads and abort
// the whole operation.
func (c *Combiner) CombineToFile(paths []string, outputPath string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		ferr := classify(outputPath, err)
		c.logger.Error("Failed to create output file",
			zap.String("path", outputPath),
			zap.String("category", ferr.Kind.String()),
			zap.Error(err))
		return ferr
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			c.logger.Error("Failed to close output file", zap.String("path", outputPath), zap.Error(cerr))
		}
	}()

	if err := c.Combine(paths, out); err != nil {
		return err
	}

	c.logger.Info("Combined file saved", zap.String("path", outputPath))
	return nil
}

// sinkError logs a fatal output-write failure once and classifies it.
func (c *Combiner) sinkError(err error) error {
	ferr := classify("", err)
	c.logger.Error("Failed to write combined output",
		zap.String("category", ferr.Kind.String()),
		zap.Error(err))
	return ferr
}
