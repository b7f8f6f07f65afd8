package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
)

// RunExtension attempts to find and execute an external networth-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "networth-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("extension-not-found name=%s err=%v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Global flags are passed down as environment variables.
	cmd.Env = append(os.Environ(), environ()...)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
