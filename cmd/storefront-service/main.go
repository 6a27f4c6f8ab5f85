package main

import (
	"log"

	"github.com/jasakreatif/storefront-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
