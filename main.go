package main

import "deborg/src/cmd"

func main() {
	cmd.Execute()
}
