package main

import "github.com/splitmask/splitmask/cmd"

func main() {
	cmd.Execute()
}
