// Package main is the entry point for the hashfn CLI.
package main

import (
	"log"
	"os"

	"github.com/storacha/go-hashfn/cmd/hashfn/internal/commands"
	"github.com/storacha/go-hashfn/core/failure"
)

func main() {
	log.SetFlags(0)
	if err := commands.New().Execute(); err != nil {
		if name := failure.NameOf(err); name != "" {
			log.Printf("error (%s): %v", name, err)
		} else {
			log.Printf("error: %v", err)
		}
		os.Exit(1)
	}
}
