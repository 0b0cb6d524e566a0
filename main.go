package main

import (
	"context"
	"os"

	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], cli.DefaultOptions()))
}
