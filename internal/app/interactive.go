// SPDX-License-Identifier: MIT
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const menu = `
[Option 1] Print out statistics about the graph.
[Option 2] Print node information.
[Option 3] Display shortest path between two nodes.
[Option 4] Quit.
Choose an option. (1-4)
`

// Interactive runs the menu loop over in until option 4, end of input or
// ctx cancellation. Command failures are reported on w and the loop goes on.
func (a *App) Interactive(ctx context.Context, in io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(in)
	prompt := func(msg string) (string, bool) {
		fmt.Fprintln(w, msg)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}
	readID := func(msg string) (int, bool, bool) {
		s, ok := prompt(msg)
		if !ok {
			return 0, false, false
		}
		id, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintf(w, "Not a movie id: %q\n", s)
			return 0, false, true
		}
		return id, true, true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, ok := prompt(menu)
		if !ok {
			break
		}

		var err error
		switch choice {
		case "1":
			err = a.Stats(w)
		case "2":
			id, valid, more := readID("Enter movie id:")
			if !more {
				return sc.Err()
			}
			if valid {
				err = a.Node(w, id, a.cfg.Radius)
			}
		case "3":
			from, valid, more := readID("Enter starting movie id:")
			if !more {
				return sc.Err()
			}
			if !valid {
				continue
			}
			to, valid, more := readID("Enter ending movie id:")
			if !more {
				return sc.Err()
			}
			if valid {
				err = a.Path(w, from, to)
			}
		case "4":
			fmt.Fprintln(w, "Exiting... bye.")
			return nil
		default:
			fmt.Fprintln(w, "Please enter a number 1-4.")
		}
		if err != nil {
			a.log.Warn("command failed", "option", choice, "error", err)
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}

	return sc.Err()
}
