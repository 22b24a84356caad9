package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	AddUser(ctx context.Context) error
	Strength(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a
// until EOF, "exit" or "quit". Handlers report their own errors to the user,
// so errors returned here are dropped and the loop keeps going.
//
//	help        show available commands
//	login       authenticate
//	passwd      change password
//	adduser     create a user
//	strength    score a password
//	logout      log out
//	exit|quit   leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("um %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: passwd, adduser, strength, logout, exit")
			} else {
				printlnFn("Available commands: login, passwd, adduser, strength, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "strength":
			_ = a.Strength(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
