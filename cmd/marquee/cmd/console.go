package cmd

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/shlex"

	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/input"
)

// errQuit is returned by Console.Exec for the quit command.
var errQuit = stderrors.New("quit")

// Console turns typed lines into the interrupts the physical board would
// raise: the two buttons and the tick timer.
type Console struct {
	handler *input.Handler
	state   *input.SharedState
	out     io.Writer
}

// NewConsole binds a console to the interrupt handlers.
func NewConsole(h *input.Handler, state *input.SharedState, out io.Writer) *Console {
	return &Console{handler: h, state: state, out: out}
}

const consoleHelp = `commands:
  reset          press the reset button
  mode           press the mode button
  tick [n]       fire the timer interrupt n times (default 1)
  preset <ticks> load the tick counter
  status         print mode, cursor and elapsed time
  quit           stop the simulator`

// Exec runs one console line. Blank lines and # comments are ignored.
func (c *Console) Exec(line string) error {
	fields, err := shlex.Split(line)
	if err != nil {
		return errors.New("console.Exec", errors.KindInput, err)
	}
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "reset", "r":
		if c.handler.Reset() {
			fmt.Fprintln(c.out, "reset")
		}
	case "mode", "m":
		if c.handler.ToggleMode() {
			fmt.Fprintf(c.out, "mode %s\n", c.state.Mode())
		}
	case "tick", "t":
		n := 1
		if len(fields) > 1 {
			n, err = strconv.Atoi(fields[1])
			if err != nil || n < 0 {
				return errors.Errorf("console.Exec", errors.KindInput, "tick count %q is not a non-negative integer", fields[1])
			}
		}
		for i := 0; i < n; i++ {
			c.handler.Tick()
		}
	case "preset":
		if len(fields) != 2 {
			return errors.Errorf("console.Exec", errors.KindInput, "usage: preset <ticks>")
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return errors.Errorf("console.Exec", errors.KindInput, "tick count %q is not a 32-bit unsigned integer", fields[1])
		}
		c.state.Clock().Preset(uint32(v))
	case "status", "s":
		fmt.Fprintf(c.out, "mode=%s cursor=%d elapsed=%s ticks=%d\n",
			c.state.Mode(), c.state.Cursor(), c.state.Clock(), c.state.Clock().Ticks())
	case "help", "?":
		fmt.Fprintln(c.out, consoleHelp)
	case "quit", "exit", "q":
		return errQuit
	default:
		return errors.Errorf("console.Exec", errors.KindInput, "unknown command %q (try help)", fields[0])
	}
	return nil
}

// Serve executes lines from r until EOF or quit. Bad lines are reported
// and skipped. It returns errQuit when the user quit and nil at EOF.
func (c *Console) Serve(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		err := c.Exec(sc.Text())
		if err == nil {
			continue
		}
		if stderrors.Is(err, errQuit) {
			return err
		}
		var ce *errors.ControllerError
		if stderrors.As(err, &ce) {
			errors.Report(ce)
			continue
		}
		return err
	}
	return sc.Err()
}
