package main

import (
	"github.com/vogtb/go-calctree/internal/cmd"
)

func main() {
	cmd.Execute()
}
