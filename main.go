package main

import (
	"cpu-scheduling-simulator/cmd"
)

func main() {
	cmd.Execute()
}
