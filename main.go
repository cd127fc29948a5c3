package main

import "github.com/KaramelBytes/tabkit-cli/cmd"

func main() {
	cmd.Execute()
}
