package main

import "orthos/cmd"

func main() {
	cmd.Execute()
}
