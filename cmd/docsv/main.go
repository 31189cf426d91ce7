package main

import "github.com/tsawler/docsv/internal/cli"

func main() {
	cli.Execute()
}
