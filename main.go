package main

import "github.com/craftgear/group-files-into-dirs/cmd"

func main() {
	cmd.Execute()
}
