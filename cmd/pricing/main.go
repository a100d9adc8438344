package main

import "github.com/narekn7/yerevan-pricing/cmd/pricing/commands"

func main() {
	commands.Execute()
}
