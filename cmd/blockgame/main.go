package main

import "github.com/mcoot/blockgame-go/internal/cli"

func main() {
	cli.Execute()
}
