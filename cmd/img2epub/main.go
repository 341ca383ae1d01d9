package main

import "github.com/jianyun8023/img2epub/cmd/img2epub/commands"

func main() {
	commands.Execute()
}
