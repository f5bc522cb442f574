package main

import "github.com/ThatOtherAndrew/unistroke/cmd"

func main() {
	cmd.Execute()
}
