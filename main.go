package main

import "serptally/cmd"

func main() {
	cmd.Execute()
}
