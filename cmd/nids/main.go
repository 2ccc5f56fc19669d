package main

import "github.com/amterp/nids/internal/cli"

func main() {
	cli.Run()
}
