package main

import (
	"github.com/peterGraf/pbl/cmd/pbl/cmd"
)

func main() {
	cmd.Execute()
}
