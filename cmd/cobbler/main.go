package main

import "cobbler/cmd/cobbler/cmd"

func main() {
	cmd.Execute()
}
