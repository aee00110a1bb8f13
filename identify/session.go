package identify

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"

	"github.com/sky-flux/hmm"
)

// ErrIncompleteSession is returned by Run when a model or sequence is missing.
var ErrIncompleteSession = errors.New("identify: session needs two models and two sequences")

const (
	prompt = ">> "
	hint   = "Answer '1' or '2'. Enter '0' to quit."
)

// Session pairs two models with one sequence sampled from each. Sequences[i]
// is expected to come from Models[i], and Names[i] labels both in the output.
type Session struct {
	Names     [2]string
	Models    [2]*hmm.Model
	Sequences [2]hmm.Sequence
}

// Run prints the menu once and then reads choices from in until the user
// quits, in is exhausted, or ctx is done. Choice 1 or 2 compares the matching
// sequence under both models and prints the verdict; any other input reprints
// the hint and prompts again.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	for i := range s.Models {
		if s.Models[i] == nil || s.Sequences[i].Len() == 0 {
			return ErrIncompleteSession
		}
	}
	if err := s.writeMenu(out); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, prompt); err != nil {
			return err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("identify: read choice: %w", err)
			}
			glog.V(1).Info("identify: input closed")
			return nil
		}

		c, err := ParseChoice(sc.Text())
		if err != nil {
			glog.V(1).Infof("identify: %v", err)
			if _, err := fmt.Fprintln(out, hint); err != nil {
				return err
			}
			continue
		}
		if c == Quit {
			return nil
		}
		if err := s.evaluate(c, out); err != nil {
			return err
		}
	}
}

func (s *Session) writeMenu(out io.Writer) error {
	var b strings.Builder
	fmt.Fprintln(&b, "Choose an observation sequence (0, 1 or 2).")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "0. Quit")
	for i := range s.Sequences {
		labels, err := s.labels(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%d. Sampled from %s: %v\n", i+1, s.Names[i], labels)
	}
	fmt.Fprintln(&b)
	_, err := io.WriteString(out, b.String())
	return err
}

func (s *Session) labels(i int) ([]string, error) {
	steps, err := s.Models[i].Steps(hmm.Sequence{Observations: s.Sequences[i].Observations})
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(steps))
	for k, st := range steps {
		labels[k] = st.Symbol
	}
	return labels, nil
}

func (s *Session) evaluate(c Choice, out io.Writer) error {
	i := int(c) - 1
	cmp, err := hmm.Compare(s.Models[0], s.Models[1], s.Sequences[i].Observations)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Evaluating sequence %d by comparing likelihoods.\n", int(c)); err != nil {
		return err
	}
	subject := hmm.First
	if c == Second {
		subject = hmm.Second
	}
	return hmm.WriteComparison(out, cmp, s.Names, subject)
}
