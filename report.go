package hmm

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteParameters prints p in declared label order with two decimals.
func WriteParameters(w io.Writer, title string, p Parameters) error {
	var b bytes.Buffer
	fmt.Fprintln(&b, title)
	fmt.Fprintf(&b, "  states:     %s\n", strings.Join(p.States, ", "))
	fmt.Fprintf(&b, "  symbols:    %s\n", strings.Join(p.Symbols, ", "))
	fmt.Fprintf(&b, "  initial:    %s\n", formatRow(p.Initial, p.States))
	for i, s := range p.States {
		label := "  transition:"
		if i > 0 {
			label = "             "
		}
		fmt.Fprintf(&b, "%s %s -> %s\n", label, s, formatRow(p.Transition[s], p.States))
	}
	for i, s := range p.States {
		label := "  emission:  "
		if i > 0 {
			label = "             "
		}
		fmt.Fprintf(&b, "%s %s -> %s\n", label, s, formatRow(p.Emission[s], p.Symbols))
	}
	_, err := w.Write(b.Bytes())
	return err
}

func formatRow(row map[string]float64, labels []string) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%.2f", l, row[l])
	}
	return strings.Join(parts, " ")
}

// WriteSample narrates seq step by step and prints the likelihood of its
// observations under m as a percentage.
func WriteSample(w io.Writer, m *Model, seq Sequence) error {
	steps, err := m.Steps(seq)
	if err != nil {
		return err
	}
	lik, err := m.Likelihood(seq.Observations)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "Sampled %d steps from the model.\n", len(steps))
	for _, s := range steps {
		fmt.Fprintf(&b, "Day %d: state %q, observed %q.\n", s.Index+1, s.State, s.Symbol)
	}
	fmt.Fprintf(&b, "Likelihood of the observations: %10f%%\n\n", lik*100)
	_, err = w.Write(b.Bytes())
	return err
}

// WriteDecoding prints the decoded path of d next to the observations and the
// number of states recovered.
func WriteDecoding(w io.Writer, m *Model, d Decoding) error {
	steps, err := m.Steps(Sequence{Observations: d.Sequence.Observations, States: d.Predicted})
	if err != nil {
		return err
	}

	var b bytes.Buffer
	fmt.Fprintln(&b, "Most likely state sequence:")
	for _, s := range steps {
		fmt.Fprintf(&b, "Day %d: observed %q, decoded state %q.\n", s.Index+1, s.Symbol, s.State)
	}
	if d.Sequence.States != nil {
		fmt.Fprintf(&b, "Recovered %d of %d states correctly.\n", d.Correct, d.Sequence.Len())
	}
	fmt.Fprintln(&b)
	_, err = w.Write(b.Bytes())
	return err
}

// WriteComparison prints both likelihoods of c and the model the sequence is
// attributed to. names labels the first and second model. subject is the
// model the sequence was sampled from: the verdict line reads
// "subject > other == true" when the subject scored strictly higher.
func WriteComparison(w io.Writer, c Comparison, names [2]string, subject Winner) error {
	winner := names[0]
	if c.Winner == Second {
		winner = names[1]
	}
	lhs, rhs, ahead := names[0], names[1], c.LogFirst > c.LogSecond
	if subject == Second {
		lhs, rhs, ahead = names[1], names[0], c.LogSecond > c.LogFirst
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s likelihood: %10f\n", names[0], c.First())
	fmt.Fprintf(&b, "%s likelihood: %10f\n", names[1], c.Second())
	fmt.Fprintf(&b, "%s > %s == %t\n", lhs, rhs, ahead)
	if c.Tie {
		fmt.Fprintln(&b, "The likelihoods are equal; the tie goes to the second model.")
	}
	fmt.Fprintf(&b, "Result: the sequence was produced by %s.\n\n", winner)
	_, err := w.Write(b.Bytes())
	return err
}
