package cli

import (
	"io"

	"github.com/spf13/cobra"

	automaton "github.com/geange/dfalgebra"
)

// ProductSummary describes one product automaton.
type ProductSummary struct {
	States       int      `json:"states" yaml:"states"`
	Start        string   `json:"start" yaml:"start"`
	AcceptStates []string `json:"accept_states" yaml:"accept_states"`
	Members      []string `json:"members" yaml:"members"`
	MinimalSize  int      `json:"minimal_states" yaml:"minimal_states"`
}

// AlgebraReport combines two automata.
type AlgebraReport struct {
	Left         string         `json:"left" yaml:"left"`
	Right        string         `json:"right" yaml:"right"`
	MaxLength    int            `json:"max_length" yaml:"max_length"`
	Intersection ProductSummary `json:"intersection" yaml:"intersection"`
	Union        ProductSummary `json:"union" yaml:"union"`
	Difference   ProductSummary `json:"difference" yaml:"difference"`
	Disjoint     bool           `json:"disjoint" yaml:"disjoint"`
	Equivalent   bool           `json:"equivalent" yaml:"equivalent"`
}

// NewAlgebraCommand creates the algebra command.
func NewAlgebraCommand(rootOpts *RootOptions) *cobra.Command {
	var maxLength int

	cmd := &cobra.Command{
		Use:   "algebra [left] [right]",
		Short: "Combine two built-in automata",
		Long: `Builds the intersection, union and difference of two fixtures, lists the
members of each product up to a bound and decides disjointness and equivalence.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right := "abc", "xyz"
			if len(args) > 0 {
				left = args[0]
			}
			if len(args) > 1 {
				right = args[1]
			}
			return runAlgebra(rootOpts, left, right, maxLength, cmd)
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", 4, "longest product member to enumerate")

	return cmd
}

func runAlgebra(rootOpts *RootOptions, leftName, rightName string, maxLength int, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	logger := rootOpts.logger()

	left, err := loadFixture(leftName)
	if err != nil {
		return err
	}
	right, err := loadFixture(rightName)
	if err != nil {
		return err
	}

	report, err := buildAlgebraReport(left, right, maxLength)
	if err != nil {
		logger.Error("algebra failed", "left", leftName, "right", rightName, "error", err)
		_ = formatter.Error(err)
		return WrapExitError(ExitFailure, "algebra", err)
	}
	report.Left, report.Right = leftName, rightName
	logger.Debug("algebra done", "left", leftName, "right", rightName,
		"product_states", report.Intersection.States)
	return formatter.Success(report)
}

func buildAlgebraReport(left, right *automaton.DFA, maxLength int) (*AlgebraReport, error) {
	r := &AlgebraReport{MaxLength: maxLength}

	intersection, err := automaton.Intersection(left, right)
	if err != nil {
		return nil, err
	}
	union, err := automaton.Union(left, right)
	if err != nil {
		return nil, err
	}
	difference, err := automaton.Difference(left, right)
	if err != nil {
		return nil, err
	}

	for _, p := range []struct {
		dfa *automaton.DFA
		out *ProductSummary
	}{
		{intersection, &r.Intersection},
		{union, &r.Union},
		{difference, &r.Difference},
	} {
		if *p.out, err = summarize(p.dfa, maxLength); err != nil {
			return nil, err
		}
	}

	if r.Disjoint, err = automaton.IsDisjoint(left, right); err != nil {
		return nil, err
	}
	if r.Equivalent, err = automaton.IsEquivalent(left, right); err != nil {
		return nil, err
	}
	return r, nil
}

func summarize(d *automaton.DFA, maxLength int) (ProductSummary, error) {
	_, members, err := d.CountMembers(maxLength)
	if err != nil {
		return ProductSummary{}, err
	}
	minimal, err := automaton.Minimize(d)
	if err != nil {
		return ProductSummary{}, err
	}
	return ProductSummary{
		States:       d.NumStates(),
		Start:        string(d.Start()),
		AcceptStates: stateNames(d.AcceptStates()),
		Members:      members,
		MinimalSize:  minimal.NumStates(),
	}, nil
}

func (r *AlgebraReport) RenderText(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Left: %s, right: %s\n", r.Left, r.Right)
	for _, s := range []struct {
		name    string
		summary ProductSummary
	}{
		{"Intersection", r.Intersection},
		{"Union", r.Union},
		{"Difference", r.Difference},
	} {
		p.printf("%s DFA:\n", s.name)
		p.printf("States: %d (minimal %d)\n", s.summary.States, s.summary.MinimalSize)
		p.printf("Start state: %s\n", s.summary.Start)
		p.printf("Accept states: %v\n", s.summary.AcceptStates)
		p.printf("Members up to length %d:\n", r.MaxLength)
		p.lines(s.summary.Members)
	}
	if r.Disjoint {
		p.printf("The two DFAs are disjoint.\n")
	} else {
		p.printf("The two DFAs are not disjoint.\n")
	}
	if r.Equivalent {
		p.printf("The two DFAs are equivalent.\n")
	} else {
		p.printf("The two DFAs are not equivalent.\n")
	}
	return p.err
}
