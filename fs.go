package main

import (
	"io/fs"
	"os"
)

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads data from
// disk can use a FS object and thus work the same if the files are embedded
// or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

// openDataFS returns the filesystem to load data from and the folder that
// should be watched for changes. A "data" folder next to the executable wins
// over the embedded files and gets watched, so the configuration and the
// boards can be edited while the game runs.
func openDataFS() (FS, string) {
	local := os.DirFS(".").(FS)
	if !FileExists(local, "data") {
		return &embeddedFiles, ""
	}
	return local, "data"
}
