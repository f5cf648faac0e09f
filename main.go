package main

import (
	"log"
	"os"
	"strings"

	"github.com/cmechlin/text-file-combiner/cmd"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		zap.L().Error("tfc execution failed", zap.Error(err))
		syncLogger()
		os.Exit(1)
	}
	syncLogger()
}

// syncLogger flushes the global logger. Sync against a terminal stderr
// returns "invalid argument" on some platforms, so only other failures are
// reported.
func syncLogger() {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := zap.L().Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
