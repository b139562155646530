// Command strokemap recognizes mouse gestures and runs the actions bound
// to them.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
