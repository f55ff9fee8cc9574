package main

import "buildtrack/cmd"

func main() {
	cmd.Execute()
}
