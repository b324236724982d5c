package cli

import "fmt"

// notifyFn is a test seam for outcome banners.
var notifyFn = func(kind, msg string) {
	fmt.Printf("[%s] %s\n", kind, msg)
}

// notifySuccess and notifyError are the terminal's stand-in for transient
// outcome banners: every command ends in exactly one of them.
func notifySuccess(msg string) { notifyFn("ok", msg) }

func notifyError(err error) { notifyFn("error", err.Error()) }
