package main

import "github.com/DavidLiedle/gitorg/cmd"

func main() {
	cmd.Execute()
}
