package main

import (
	"log"

	"github.com/numeralia/romanos/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
