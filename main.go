package main

import "licensegraph/cmd"

func main() {
	cmd.Execute()
}
