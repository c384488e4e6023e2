package main

import "github.com/aalvaropc/marina/internal/cli"

func main() {
	cli.Execute()
}
