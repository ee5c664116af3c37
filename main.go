package main

import "github.com/example/tweetpipe/cmd"

func main() {
	cmd.Execute()
}
