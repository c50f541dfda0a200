package main

import "paydown/cmd"

func main() {
	cmd.Execute()
}
