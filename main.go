package main

import "github.com/PedroBiel/EN-10025/cmd"

func main() {
	cmd.Execute()
}
