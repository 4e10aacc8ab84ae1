package main

import "rapport/cmd/rapport-cli/cmd"

func main() {
	cmd.Execute()
}
