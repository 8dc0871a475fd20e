package main

import (
	"log"

	"github.com/relguard/relguard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
