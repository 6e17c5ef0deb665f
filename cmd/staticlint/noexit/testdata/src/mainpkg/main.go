package main

import (
	"os"
	osx "os"
)

func main() {
	defer func() {
		os.Exit(2)
	}()
	if len(os.Args) > 3 {
		osx.Exit(1) // want "вызов os.Exit в функции main запрещён"
	}
	os.Exit(0) // want "вызов os.Exit в функции main запрещён"
}

func helper() {
	os.Exit(1)
}
