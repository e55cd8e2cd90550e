package main

import (
	"log"

	"github.com/getaroundlab/pricing/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("pricing: %v", err)
	}
}
