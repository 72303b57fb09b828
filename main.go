package main

import "snapcheck/cmd"

func main() {
	cmd.Execute()
}
