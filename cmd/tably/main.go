package main

import "github.com/bjaus/tably/internal/cli"

func main() {
	cli.Execute()
}
