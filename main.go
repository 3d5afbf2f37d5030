package main

import "github.com/user/lynis-dash/cmd"

func main() {
	cmd.Execute()
}
