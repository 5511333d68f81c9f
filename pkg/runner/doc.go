/*
Package runner implements the interactive loop that drives a task board from a
line-oriented stream.

The runner reads commands through a pluggable IOHandler, applies them to a
ports.Dispatcher and prints the board whenever it changes.

# Key Components

  - Runner: reads commands, executes them and reports failures without stopping.
  - TextHandler: a REPL with short commands (add-list, move, grab, hover, drop).
  - JSONHandler: newline-delimited action envelopes in, board snapshots out.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx, store); err != nil {
		log.Fatal(err)
	}
*/
package runner
