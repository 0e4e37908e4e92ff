package main

import "github.com/scrna-tools/scqc/cmd"

func main() {
	cmd.Execute()
}
