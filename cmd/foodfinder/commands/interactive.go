package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/korninw/thai-food-finder/internal/navigation"
	"github.com/korninw/thai-food-finder/internal/query"
)

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Live search: each input line replaces the search text",
		Long: `Each line read from stdin replaces the search text. The dropdown is shown
once input has been idle for SEARCH_DEBOUNCE_MS.

  :go        open the first hit of the current text
  :open <n>  open hit n of the dropdown
  :q         quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &liveSearch{
				out:      cmd.OutOrStdout(),
				limit:    cfg.SearchLimit,
				state:    navigation.Initial(),
				debounce: navigation.NewDebouncer(cfg.DebounceDelay),
			}
			return s.run(cmd.InOrStdin())
		},
	}
}

// liveSearch holds one interactive session. Debounced renders run on timer
// goroutines, so every field below mu is guarded by it.
type liveSearch struct {
	out      io.Writer
	limit    int
	debounce *navigation.Debouncer

	mu    sync.Mutex
	state navigation.State
	text  string
	shown bool
	hits  []query.Hit
}

func (s *liveSearch) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == ":q":
			s.debounce.Cancel()
			return nil
		case line == ":go":
			s.debounce.Cancel()
			if err := s.submit(); err != nil {
				return err
			}
		case strings.HasPrefix(line, ":open "):
			s.debounce.Cancel()
			if err := s.openHit(strings.TrimSpace(strings.TrimPrefix(line, ":open "))); err != nil {
				return err
			}
		default:
			s.input(line)
		}
	}

	// Input ended before the quiet period did; show the final text.
	s.debounce.Cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.shown {
		if err := s.renderLocked(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// input replaces the search text. The text and its token change together
// under mu, so a callback that still holds a superseded token never renders
// the new text.
func (s *liveSearch) input(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.shown = false

	s.debounce.Schedule(func(tok navigation.Token) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.shown || !s.debounce.Valid(tok) {
			return
		}
		if err := s.renderLocked(); err != nil {
			fmt.Fprintln(s.out, err)
		}
	})
}

func (s *liveSearch) renderLocked() error {
	hits, err := searchHits(s.out, s.text, s.limit)
	s.hits = hits
	s.shown = true
	return err
}

func (s *liveSearch) submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := quickSearch(s.out, s.state, s.text)
	s.state = next
	s.shown = true
	return err
}

func (s *liveSearch) openHit(arg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.shown {
		if err := s.renderLocked(); err != nil {
			return err
		}
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.hits) {
		fmt.Fprintf(s.out, "ไม่มีผลลำดับที่ %s\n", arg)
		return nil
	}
	next, err := open(s.out, s.state, s.hits[n-1])
	s.state = next
	return err
}
