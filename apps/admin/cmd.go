package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/secwepemc-ed/curricula/core"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf *core.Config
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  checkcontent [-dir DIR]      - lint the curriculum content (embedded set by default)")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]       - run DB migrations (up, down, status, ...)")
	fmt.Fprintln(cli.out, "  hashpassword                 - hash an admin password for the config")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	checkContentCmd := flag.NewFlagSet("checkcontent", flag.ExitOnError)
	checkContentDir := checkContentCmd.String("dir", "", "The content directory to check. Defaults to the embedded content.")

	switch args[1] {
	case "checkcontent":
		if err := checkContentCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.checkContent(*checkContentDir)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "hashpassword":
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
