package main

import (
	"github.com/mchadwick/parley/cmd/parley/cmd"
)

func main() {
	cmd.Execute()
}
