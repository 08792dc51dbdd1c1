package main

import "catalog-bridge/cmd"

func main() {
	cmd.Execute()
}
