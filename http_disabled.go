//go:build !http_enabled

package main

import (
	"github.com/marisvali/tetris1/world"
)

func UploadPlaythroughs(user string, ch chan world.Playthrough) {
	for range ch {
	}
}
