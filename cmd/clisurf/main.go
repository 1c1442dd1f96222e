package main

import "github.com/rsuth/clisurf/internal/cli"

func main() {
	cli.Execute()
}
