package main

import "domain-checker/cmd"

func main() {
	cmd.Execute()
}
