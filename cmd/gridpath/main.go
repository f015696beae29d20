package main

import (
	"os"

	"github.com/pdrpinto/gridpath/pkg/logger"
)

func main() {
	logger.Init()
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger.Log.WithError(err).Error("gridpath failed")
		os.Exit(1)
	}
}
