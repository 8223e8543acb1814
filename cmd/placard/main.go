// Command placard grades inspection scores per jurisdiction.
package main

import (
	"os"

	"github.com/placardhq/placard/cmd"
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/internal/iocache"
)

func main() {
	defer iocache.CloseStores()
	cmd.SetHistoryManager(iocache.Manager)

	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		contract.LogWarn("placard failed", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}
