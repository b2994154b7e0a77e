package main

import "github.com/maibrennan/larder/cmd"

func main() {
	cmd.Execute()
}
