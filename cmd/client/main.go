package main

import "plantkeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
