package repl

import (
	"strconv"

	"github.com/keydex/keydex/pkg/x_log"
)

// helpText lists every menu command; keep in step with dispatch.
const helpText = `commands:
  add <value>          insert a value under the next auto key
  rand                 insert a random value from [1,100]
  get <key>            look up a key
  range <start> <end>  list pairs with start <= key <= end
  del <key>            remove a key (absent keys are ignored)
  show                 print the tree level by level
  reset                drop everything, keys start over at 1
  help                 this text
  quit                 leave`

// dispatch runs one tokenized command, reporting whether the session
// should end.
func (s *Session) dispatch(tokens []string) (quit bool) {
	log := x_log.With("repl")
	cmd, args := tokens[0], tokens[1:]

	switch cmd {
	case "add":
		v, ok := s.intArgs(cmd, args, 1)
		if !ok {
			return false
		}
		key := s.tree.Insert(v[0])
		log.Debug().Int("key", key).Int("value", v[0]).Str("op", "add").Msg("inserted")
		s.ok("stored %d under key %d", v[0], key)

	case "rand":
		if !s.noArgs(cmd, args) {
			return false
		}
		key := s.tree.AddRandom()
		value, _ := s.tree.Search(key)
		s.ok("stored random %d under key %d", value, key)

	case "get":
		v, ok := s.intArgs(cmd, args, 1)
		if !ok {
			return false
		}
		if value, found := s.tree.Search(v[0]); found {
			s.ok("key %d holds %d", v[0], value)
		} else {
			s.printf("key %d not found\n", v[0])
		}

	case "range":
		v, ok := s.intArgs(cmd, args, 2)
		if !ok {
			return false
		}
		pairs := s.tree.Range(v[0], v[1])
		if len(pairs) == 0 {
			s.printf("no keys in [%d, %d]\n", v[0], v[1])
			return false
		}
		for _, p := range pairs {
			s.printf("  %d: %d\n", p.Key, p.Value)
		}

	case "del":
		v, ok := s.intArgs(cmd, args, 1)
		if !ok {
			return false
		}
		s.tree.Remove(v[0])
		log.Debug().Int("key", v[0]).Str("op", "del").Msg("removed")
		s.ok("key %d removed (if it existed)", v[0])

	case "show":
		if !s.noArgs(cmd, args) {
			return false
		}
		s.printf("%s", s.rend.Render(s.tree))
		s.printf("%s\n", s.rend.Summary(s.tree))

	case "reset":
		if !s.noArgs(cmd, args) {
			return false
		}
		s.tree.Reset()
		log.Debug().Str("op", "reset").Msg("tree reset")
		s.ok("tree reset, next key is 1")

	case "help":
		s.printf("%s\n", helpText)

	case "quit", "exit":
		return true

	default:
		s.fail("unknown command %q, try 'help'", cmd)
	}
	return false
}

// intArgs validates arity and parses every argument as an integer.
func (s *Session) intArgs(cmd string, args []string, want int) ([]int, bool) {
	if len(args) != want {
		s.fail("%s takes %d argument(s), got %d", cmd, want, len(args))
		return nil, false
	}
	out := make([]int, 0, want)
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			s.fail("%s: %q is not an integer", cmd, a)
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// noArgs rejects stray arguments on nullary commands.
func (s *Session) noArgs(cmd string, args []string) bool {
	if len(args) != 0 {
		s.fail("%s takes no arguments", cmd)
		return false
	}
	return true
}
