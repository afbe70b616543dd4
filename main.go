package main

import "github.com/dtreelab/dtree-sim/cmd"

func main() {
	cmd.Execute()
}
