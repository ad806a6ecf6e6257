package main

import (
	"os"

	"github.com/Raj-Mandhyan/EduGenie3/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
