// cmd/outerjoin/main.go
package main

import (
	"annotools/internal/appshell"
	"annotools/internal/outerjoinapp"
)

func main() { appshell.Main(outerjoinapp.RunContext) }
