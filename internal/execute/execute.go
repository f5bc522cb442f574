package execute

import (
	"os/exec"
	"syscall"
)

// Shell runs gesture commands.
var Shell = "sh"

// Command starts command in a new session and returns its pid without
// waiting for it, so the launched program outlives this process. An empty
// command is a no-op.
func Command(command string) (int, error) {
	if command == "" {
		return 0, nil
	}

	cmd := exec.Command(Shell, "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	go cmd.Wait() //nolint:errcheck // reap the child
	return pid, nil
}
