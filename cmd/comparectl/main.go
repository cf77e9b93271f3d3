package main

import "compare-audius-be/cmd/comparectl/cmd"

func main() {
	cmd.Execute()
}
