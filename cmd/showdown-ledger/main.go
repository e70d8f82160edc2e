// Command showdown-ledger inspects and resets the persisted achievement
// ledger without starting the game.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(openGData).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "showdown-ledger: "+err.Error())
		os.Exit(1)
	}
}
