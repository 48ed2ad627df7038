package main

import "github.com/dschabow91/maintrack/cmd"

func main() {
	cmd.Execute()
}
