package main

import "github.com/theirongolddev/taka/cmd"

func main() {
	cmd.Execute()
}
