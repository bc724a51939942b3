package main

import "ideaindex/cmd/ideaindex-cli/cmd"

func main() {
	cmd.Execute()
}
