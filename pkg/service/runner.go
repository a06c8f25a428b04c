package service

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Runner launches an external program with the note path appended as the
// final argument. The child inherits stdio; its exit status is propagated.
type Runner func(argv []string, notePath string) error

// ExecRunner is the production Runner.
func ExecRunner(argv []string, notePath string) error {
	if len(argv) == 0 {
		return fmt.Errorf("no program configured")
	}

	args := append(append([]string{}, argv[1:]...), notePath)
	cmd := exec.Command(argv[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logrus.WithFields(logrus.Fields{"program": argv[0], "args": args}).Debug("running external program")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	return nil
}

// WithRunner swaps the external program invoker; used by tests.
func (s *Service) WithRunner(r Runner) *Service {
	s.run = r
	return s
}
