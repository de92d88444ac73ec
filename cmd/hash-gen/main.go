package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"lawconnect.backend/pkg/crypto"
)

const adminTokenBytes = 32

var (
	stdout         io.Writer = os.Stdout
	generateHashFn           = crypto.HashPassword
	randomTokenFn            = crypto.GenerateRandomToken
	fatalfFn                 = log.Fatalf
)

// hash-gen prints a bcrypt hash for seeding a password or recovery secret,
// or with -admin-token a random value for ADMIN_TOKEN.
func main() {
	if err := run(os.Args[1:]); err != nil {
		fatalfFn("%v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("hash-gen", flag.ContinueOnError)
	fs.SetOutput(stdout)
	adminToken := fs.Bool("admin-token", false, "print a random admin token instead of a hash")
	verify := fs.String("verify", "", "check the value against this bcrypt hash")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *adminToken {
		token, err := randomTokenFn(adminTokenBytes)
		if err != nil {
			return fmt.Errorf("failed to generate admin token: %w", err)
		}
		fmt.Fprintf(stdout, "ADMIN_TOKEN=%s\n", token)
		return nil
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: hash-gen [-verify hash] <secret> | hash-gen -admin-token")
	}
	secret := fs.Arg(0)

	if *verify != "" {
		if !crypto.CheckPassword(secret, *verify) {
			return fmt.Errorf("hash does not match")
		}
		fmt.Fprintln(stdout, "Hash matches")
		return nil
	}

	hash, err := generateHashFn(secret)
	if err != nil {
		return fmt.Errorf("failed to hash secret: %w", err)
	}
	fmt.Fprintf(stdout, "Bcrypt Hash: %s\n", hash)
	return nil
}
