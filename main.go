// main.go

package main

import (
	"github.com/CodeMonkeyCybersecurity/sentinel/cmd"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/logger"
)

func main() {
	logger.Initialize()
	cmd.Execute()
}
