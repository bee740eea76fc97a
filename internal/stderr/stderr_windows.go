//go:build windows

package stderr

import (
	"fmt"
	"os"
)

// Messages stays silent on Windows: the fd 2 redirect has no counterpart.
var Messages = make(chan string)

func Start() error { return nil }

func Stop() {}

// WriteOriginal prints to the process stderr.
func WriteOriginal(msg string) {
	fmt.Fprint(os.Stderr, msg)
}
