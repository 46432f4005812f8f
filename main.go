// Package main is the entry point of envboot.
package main

import "github.com/mouse-blink/envboot/cmd"

func main() {
	cmd.Execute()
}
