package main

import "github.com/tidepool-org/glucoguide/cmd/glucoctl/command"

func main() {
	command.Execute()
}
