// Package cli provides the interactive usermanager command line.
//
// It wires configuration, the database, and the credential services, then
// either runs a single command or an interactive REPL:
//   - login     authenticate; legacy plaintext credentials are migrated
//   - passwd    change the password of the logged-in (or prompted) user
//   - adduser   create a user with a hashed password
//   - strength  score a candidate password without storing it
//   - logout    forget the current session
//
// Passwords are read from the terminal without echo. When stdin is not a
// terminal they are read as plain lines so the tool can be scripted.
package cli
