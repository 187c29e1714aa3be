package main

import "pagesim/cmd/pagesim/cmd"

func main() {
	cmd.Execute()
}
