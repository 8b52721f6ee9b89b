// cmd/colavg/main.go
package main

import (
	"annotools/internal/appshell"
	"annotools/internal/colavgapp"
)

func main() { appshell.Main(colavgapp.RunContext) }
