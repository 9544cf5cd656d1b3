package main

import (
	"ark-savior/cli"
)

func main() {
	cli.Start()
}
