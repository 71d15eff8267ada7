// Command agentmail is a CLI for the Agent Mail messaging service.
// Results are printed as JSON so the tool composes with scripts and
// agent harnesses.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Pick up a .env file when present; missing is fine.
	_ = godotenv.Load()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "agentmail: %v\n", err)
		os.Exit(1)
	}
}
