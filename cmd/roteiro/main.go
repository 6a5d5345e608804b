package main

import (
	"os"

	"github.com/msto63/roteiro/cmd/roteiro/cmd"
	mdwerror "github.com/msto63/roteiro/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
