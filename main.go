package main

import (
	"github.com/qmn/pershing/cmd"
)

func main() {
	cmd.Execute()
}
