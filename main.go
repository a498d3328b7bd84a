package main

import "github.com/notargets/elastobar/cmd"

func main() {
	cmd.Execute()
}
