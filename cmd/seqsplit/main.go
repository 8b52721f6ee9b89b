// cmd/seqsplit/main.go
package main

import (
	"annotools/internal/appshell"
	"annotools/internal/seqsplitapp"
)

func main() { appshell.Main(seqsplitapp.RunContext) }
