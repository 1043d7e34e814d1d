package main

import (
	"os"

	"github.com/itchan-dev/forum/backend/internal/cli"
	"github.com/itchan-dev/forum/shared/logger"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Log.Error("forum-api failed", "error", err)
		os.Exit(1)
	}
}
