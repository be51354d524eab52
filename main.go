package main

import (
	"os"

	"github.com/w31r4/susres/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
