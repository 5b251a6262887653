// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows and the application services into a single
// process lifecycle: login first, then the chat loop, with logout returning
// to login.
package client
