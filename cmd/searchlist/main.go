package main

import "searchlist/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
