// cmd/seqlen/main.go
package main

import (
	"annotools/internal/appshell"
	"annotools/internal/seqlenapp"
)

func main() { appshell.Main(seqlenapp.RunContext) }
