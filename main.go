package main

import "devicon/cmd"

func main() {
	cmd.Execute()
}
