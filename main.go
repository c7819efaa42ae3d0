package main

import "github.com/getcreddy/envgen/cmd"

func main() {
	cmd.Execute()
}
