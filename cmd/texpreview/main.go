package main

import (
	"os"
)

func main() {
	err := newApp().command().Execute()
	if err != nil {
		os.Exit(1)
	}
}
