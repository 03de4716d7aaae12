package main

import (
	"os"

	"github.com/msto63/bizclock/cmd/bizclock/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
