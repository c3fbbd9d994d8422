package main

import (
	"github.com/Johnpaulreju/Digit-duel/internal/cli"
)

func main() {
	cli.Execute()
}
