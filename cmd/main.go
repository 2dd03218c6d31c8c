// cmd/main.go
package main

import cmd "github.com/mwiater/framebench/cmd/framebench"

// main starts the framebench CLI by delegating to the cobra root command
// defined in the framebench package.
func main() {
	cmd.Execute()
}
