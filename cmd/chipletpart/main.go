// Idiomatic entrypoint for the Cobra CLI; command wiring lives in root.go.
package main

import "os"

func main() {
	os.Exit(Execute())
}
