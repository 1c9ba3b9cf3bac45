package main

import "imperator/cmd"

func main() {
	cmd.Execute()
}
