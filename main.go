package main

import (
	"github/chapool/sol-balance/cmd"
)

func main() {
	cmd.Execute()
}
