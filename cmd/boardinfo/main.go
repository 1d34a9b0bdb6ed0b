package main

import "magic8badge/cmd/boardinfo/cmd"

func main() {
	cmd.Execute()
}
