package main

import "github.com/gonghongchen/hc-site/cmd"

func main() {
	cmd.Execute()
}
