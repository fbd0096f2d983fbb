package main

import "github.com/Guerrilla-Interactive/spacetraders-cli/cmd"

// Version is set via linker flags during release builds.
var Version = "dev"

func main() {
	cmd.Execute(Version)
}
