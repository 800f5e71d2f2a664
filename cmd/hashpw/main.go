package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"accounts/internal/infra/auth"
)

// Usage:
//
//	hashpw [-cost N] <password|->
//	hashpw -verify <digest> <password|->
//
// A password of "-" is read from the first line of stdin.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("hashpw", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	verify := fs.String("verify", "", "digest to check the password against")

	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one password argument")
	}
	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		return errors.Errorf("cost %d outside [%d, %d]", *cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	password, err := readPassword(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptHasherWithCost(*cost)

	if *verify != "" {
		ok, err := hasher.Check(password, *verify)
		if err != nil {
			return errors.Wrap(err, "compare")
		}
		if !ok {
			_, err = fmt.Fprintln(stdout, "mismatch")

			return err
		}
		_, err = fmt.Fprintln(stdout, "match")

		return err
	}

	digest, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "hash")
	}
	_, err = fmt.Fprintln(stdout, digest)

	return err
}

func readPassword(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read password from stdin")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
