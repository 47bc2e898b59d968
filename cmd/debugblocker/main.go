// Command debugblocker runs the debug-blocking recommender: given two
// already-tokenized record tables and a candidate set an external
// blocker produced, it recommends additional pairs a blocker-recall
// debugging session should inspect.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
