// cmd/intron-length/main.go
package main

import (
	"annotools/internal/appshell"
	"annotools/internal/intronlenapp"
)

func main() { appshell.Main(intronlenapp.RunContext) }
