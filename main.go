package main

import "github.com/MoreDelay/inori/internal/cli"

func main() {
	cli.Execute()
}
