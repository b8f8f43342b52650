package main

import (
	"log"

	"github.com/tidepool-org/glucoguide/api"
	"github.com/tidepool-org/glucoguide/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("could not load .env file: %v", err)
	}

	api.MainLoop()
}
