package main

import "thoreinstein.com/hindsight/cmd"

func main() {
	cmd.Execute()
}
