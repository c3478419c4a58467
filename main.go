package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gameoflife/utils"
)

// app is the command-line surface: it validates arguments, runs the game and
// turns any failure into a single diagnostic line and a failing exit status.
type app struct {
	configPath string
	stdout     io.Writer
	stderr     io.Writer
}

func main() {
	a := &app{
		configPath: utils.ConfigFile,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	os.Exit(a.run(os.Args))
}

// run returns the process exit status for args
func (a *app) run(args []string) int {
	if err := checkArgs(args); err != nil {
		return a.fail(err)
	}

	config, err := utils.LoadConfig(a.configPath)
	if err != nil {
		return a.fail(err)
	}

	logger := utils.NewLogger(a.stderr, config.LogLevel)
	if err = runGame(config, args[1], a.stdout, logger); err != nil {
		return a.fail(err)
	}
	return 0
}

// fail reports err and returns the failing exit status. Usage errors print
// the usage text on stdout; everything else is one line on stderr.
func (a *app) fail(err error) int {
	var fatal *utils.FatalError
	if errors.As(err, &fatal) && fatal.Kind == utils.KindUsage {
		fmt.Fprint(a.stdout, fatal.Err)
		return 1
	}
	fmt.Fprintf(a.stderr, "error: %v\n", err)
	return 1
}

// checkArgs requires exactly one positional argument, the board file
func checkArgs(args []string) error {
	if len(args) == 2 {
		return nil
	}
	return &utils.FatalError{
		Kind:  utils.KindUsage,
		Check: "usage",
		Err:   errors.Errorf("Usage:\n%s input.dat\n", programName(args)),
	}
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "gameoflife"
	}
	return "./" + filepath.Base(args[0])
}
