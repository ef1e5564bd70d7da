package main

import (
	"github.com/forestlab/rilsim/internal/cli"
)

func main() {
	cli.Execute()
}
