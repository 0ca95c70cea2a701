package main

import "github.com/renato0307/shade/internal/cli"

func main() {
	cli.Execute()
}
