package main

import "github.com/peppermintpatty5/avl-tree/internal/cli"

func main() {
	cli.Execute()
}
