package main

import (
	"lgd-info/cli"
)

func main() {
	cli.Start()
}
