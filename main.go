package main

import "worldcraft/cmd"

func main() {
	cmd.Execute()
}
