package main

import (
	"log"

	"github.com/codescroll/codescroll/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
