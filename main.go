package main

import "oss-bridge/cmd"

func main() {
	cmd.Execute()
}
