package main

import "github.com/picobox/mysh-llm/cmd"

func main() {
	cmd.Execute()
}
