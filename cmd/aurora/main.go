package main

import (
	"github.com/aurora-pm/aurora/cmd/aurora/internal"
)

func main() {
	internal.Execute()
}
