// Command wfc runs overlapping Wave Function Collapse texture
// synthesis against an input image, writing a generated output image
// of the requested size.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
