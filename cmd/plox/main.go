// Command plox is a thin CLI around the interp package: run a program
// from a file, or read one line at a time from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/ogunblade/plox/internal/diag"
	"github.com/ogunblade/plox/interp"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "filePath", "", "File path")
	flag.Parse()

	if filePath == "" {
		runPrompt()
		return
	}
	runFile(filePath)
}

func runFile(path string) {
	if err := interp.RunFile(path); err != nil {
		fmt.Fprintln(os.Stderr, diag.Format(err))
		os.Exit(diag.ExitCode(err))
	}
}

func runPrompt() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if err := interp.RunString(scanner.Text(), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, diag.Format(err))
		}
	}
}
