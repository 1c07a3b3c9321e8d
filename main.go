package main

import (
	"os"

	"github.com/mcpbuilder/mcpbuilder/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
