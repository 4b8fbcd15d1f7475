// Command inv2x2 inverts a 2×2 matrix given as YAML or JSON.
//
//	inv2x2 '[[4, 7], [2, 6]]'
//	inv2x2 --file matrix.yaml --format yaml
//	echo '[[1, 0], [0, 1]]' | inv2x2
package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, newProductionLogger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newProductionLogger builds the zap logger used outside tests.
func newProductionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
