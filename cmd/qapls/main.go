// Command qapls solves QAP instances with pairwise-exchange local search
// and benchmarks the search strategies against constructive baselines.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
