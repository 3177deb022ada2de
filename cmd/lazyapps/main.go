package main

import "lazyapps/internal/cli"

func main() {
	cli.Execute()
}
