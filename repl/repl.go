// Package repl is the interactive text menu around one tree instance.
// It owns all user-input validation; the tree engine never sees a
// malformed command.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/shlex"

	"github.com/keydex/keydex/btree"
	"github.com/keydex/keydex/pkg/x_log"
	"github.com/keydex/keydex/render"
)

// ----------------------------------------------------
// Session
// ----------------------------------------------------

// Session is one interactive run over an in/out pair. Input and output
// are injected so tests can script a whole session.
type Session struct {
	tree *btree.Tree
	rend *render.Renderer

	in  io.Reader
	out io.Writer

	prompt lipgloss.Style
	errTxt lipgloss.Style
	okTxt  lipgloss.Style
}

// New creates a session over tree with the given console theme.
func New(tree *btree.Tree, theme string, in io.Reader, out io.Writer) *Session {
	return &Session{
		tree:   tree,
		rend:   render.New(theme),
		in:     in,
		out:    out,
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorBlue60)).Bold(true),
		errTxt: lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorRed60)),
		okTxt:  lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGreen40)),
	}
}

// Run reads commands until quit or end of input.
func (s *Session) Run() error {
	s.printf("%s\n", s.okTxt.Render("keydex interactive index (type 'help' for commands)"))

	scanner := bufio.NewScanner(s.in)
	for {
		s.printf("%s ", s.prompt.Render("keydex>"))
		if !scanner.Scan() {
			s.printf("\n")
			return scanner.Err()
		}

		tokens, err := shlex.Split(scanner.Text())
		if err != nil {
			s.fail("cannot parse input: %v", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		if s.dispatchSafe(tokens) {
			return nil
		}
	}
}

// dispatchSafe wraps dispatch with panic recovery: a panic inside a
// command is logged and the session continues, a structural bug must
// not kill the menu.
func (s *Session) dispatchSafe(tokens []string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			log := x_log.With("repl")
			log.Error().
				Str("op", tokens[0]).
				Interface("panic", r).
				Msg("command panicked")
			log.Debug().Msg(string(debug.Stack()))
			s.fail("internal error while running %q, session continues", tokens[0])
		}
	}()
	return s.dispatch(tokens)
}

// ----------------------------------------------------
// Output helpers
// ----------------------------------------------------

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) fail(format string, args ...any) {
	s.printf("%s\n", s.errTxt.Render(fmt.Sprintf(format, args...)))
}

func (s *Session) ok(format string, args ...any) {
	s.printf("%s\n", s.okTxt.Render(fmt.Sprintf(format, args...)))
}
