package main

import "github.com/CosmoTheDev/threatreport/cmd"

func main() {
	cmd.Execute()
}
