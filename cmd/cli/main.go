package main

import (
	"github.com/pitwall/pitgames/internal/cli"
)

func main() {
	cli.Execute()
}
