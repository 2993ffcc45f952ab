package main

import "github.com/Skpow1234/Shardvault/internal/cli"

func main() {
	cli.Execute()
}
