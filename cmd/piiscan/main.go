package main

import "github.com/creaotrhubn26/tidsflyt-piiscan/internal/cli"

func main() {
	cli.Execute()
}
