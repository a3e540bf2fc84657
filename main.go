package main

import "github.com/pcawg2/payload-tools/cmd"

func main() {
	cmd.Execute()
}
