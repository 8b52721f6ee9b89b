// cmd/qualtrim/main.go
package main

import (
	"annotools/internal/appshell"
	"annotools/internal/qualtrimapp"
)

func main() { appshell.Main(qualtrimapp.RunContext) }
