package main

import "scanenv/internal/cli"

func main() {
	cli.Execute()
}
