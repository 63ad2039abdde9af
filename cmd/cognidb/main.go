// Package main is the entry point for the cognidb CLI, a small terminal
// client for running statements against a CogniDB server.
package main

func main() {
	execute()
}
