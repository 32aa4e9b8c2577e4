package main

import (
	"github.com/karasz/cmosclock/cmd"
)

func main() {
	cmd.Execute()
}
