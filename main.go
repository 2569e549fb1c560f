package main

import "vidl/cmd"

func main() {
	cmd.Execute()
}
