//go:build !(js && wasm)

package main

import (
	"os"
)

func getUsername() string {
	name, err := os.Hostname()
	if err != nil {
		return "tetris1-dev"
	}
	return name
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
