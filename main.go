package main

import "github.com/user/gpudoctor/cmd"

func main() {
	cmd.Execute()
}
