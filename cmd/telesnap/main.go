// main is the entry point for the telesnap CLI.
package main

import (
	"github.com/usagelab/telesnap/cmd"
	"github.com/usagelab/telesnap/internal/contract"
	"github.com/usagelab/telesnap/internal/histstore"
)

func main() {
	defer histstore.CloseStores()

	cmd.SetHistoryManager(histstore.Manager)

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
