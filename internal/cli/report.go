package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	automaton "github.com/geange/dfalgebra"
)

// ReportOptions holds the flags of the report command.
type ReportOptions struct {
	MaxLength   int
	Word        string
	Length      int
	CountLength int
}

// Report summarizes the language of a single automaton.
type Report struct {
	Fixture                string   `json:"fixture" yaml:"fixture"`
	MaxLength              int      `json:"max_length" yaml:"max_length"`
	MemberCount            int      `json:"member_count" yaml:"member_count"`
	Members                []string `json:"members" yaml:"members"`
	Empty                  bool     `json:"empty" yaml:"empty"`
	Infinite               bool     `json:"infinite" yaml:"infinite"`
	Shortest               int      `json:"shortest" yaml:"shortest"`
	Longest                int      `json:"longest" yaml:"longest"`
	Word                   string   `json:"word" yaml:"word"`
	WordAccepted           bool     `json:"word_accepted" yaml:"word_accepted"`
	AcceptedExamples       []string `json:"accepted_examples,omitempty" yaml:"accepted_examples,omitempty"`
	RejectedExamples       []string `json:"rejected_examples,omitempty" yaml:"rejected_examples,omitempty"`
	ExamplesError          string   `json:"examples_error,omitempty" yaml:"examples_error,omitempty"`
	Length                 int      `json:"length" yaml:"length"`
	StringsOfLength        []string `json:"strings_of_length" yaml:"strings_of_length"`
	CountLength            int      `json:"count_length" yaml:"count_length"`
	CountOfLength          int      `json:"count_of_length" yaml:"count_of_length"`
	AcceptStates           []string `json:"accept_states" yaml:"accept_states"`
	ComplementAcceptStates []string `json:"complement_accept_states" yaml:"complement_accept_states"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report [fixture]",
		Short: "Describe the language of a built-in automaton",
		Long: `Enumerates the members of the language up to a bound, decides emptiness and
infiniteness, tests a word, collects example words, counts words of a given length
and shows the accept states of the complement.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "abc"
			if len(args) == 1 {
				name = args[0]
			}
			return runReport(rootOpts, opts, name, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxLength, "max-length", 5, "longest member to enumerate")
	cmd.Flags().StringVar(&opts.Word, "word", "aa", "word to test for acceptance")
	cmd.Flags().IntVar(&opts.Length, "length", 1, "length of the listed words")
	cmd.Flags().IntVar(&opts.CountLength, "count-length", 2, "length of the counted words")

	return cmd
}

func runReport(rootOpts *RootOptions, opts *ReportOptions, name string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	logger := rootOpts.logger()

	d, err := loadFixture(name)
	if err != nil {
		return err
	}
	logger.Debug("building report", "fixture", name, "states", d.NumStates(), "max_length", opts.MaxLength)

	report, err := buildReport(d, name, opts)
	if err != nil {
		logger.Error("report failed", "fixture", name, "error", err)
		_ = formatter.Error(err)
		return WrapExitError(ExitFailure, "report", err)
	}
	return formatter.Success(report)
}

func buildReport(d *automaton.DFA, name string, opts *ReportOptions) (*Report, error) {
	r := &Report{
		Fixture:     name,
		MaxLength:   opts.MaxLength,
		Word:        opts.Word,
		Length:      opts.Length,
		CountLength: opts.CountLength,
	}

	var err error
	if r.MemberCount, r.Members, err = d.CountMembers(opts.MaxLength); err != nil {
		return nil, err
	}
	if r.Empty, err = d.IsEmpty(); err != nil {
		return nil, err
	}
	if r.Infinite, err = d.IsInfinite(); err != nil {
		return nil, err
	}
	r.Shortest = automaton.ShortestWord(r.Members)
	r.Longest = automaton.LongestWord(r.Members)
	if r.WordAccepted, err = d.LanguageAccepts(opts.Word); err != nil {
		return nil, err
	}

	// Running out of examples is part of the report, not a failure.
	r.AcceptedExamples, r.RejectedExamples, err = d.LanguageExamples()
	if err != nil {
		r.ExamplesError = err.Error()
	}

	if r.StringsOfLength, err = d.StringsOfLength(opts.Length); err != nil {
		return nil, err
	}
	if r.CountOfLength, err = d.CountStringsOfLength(opts.CountLength); err != nil {
		return nil, err
	}

	r.AcceptStates = stateNames(d.AcceptStates())
	r.ComplementAcceptStates = stateNames(automaton.Complement(d).AcceptStates())
	return r, nil
}

func (r *Report) RenderText(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Fixture: %s\n", r.Fixture)
	p.printf("Members up to length %d: %d\n", r.MaxLength, r.MemberCount)
	p.lines(r.Members)
	p.printf("Is the language empty? %t\n", r.Empty)
	p.printf("Is the language infinite? %t\n", r.Infinite)
	p.printf("Length of the shortest string is: %d\n", r.Shortest)
	p.printf("Length of the longest string is: %d\n", r.Longest)
	p.printf("Does the language accept '%s'? %t\n", r.Word, r.WordAccepted)
	if r.ExamplesError != "" {
		p.printf("Examples: %s\n", r.ExamplesError)
	} else {
		p.printf("Accepted examples:\n")
		p.lines(r.AcceptedExamples)
		p.printf("Non-accepted examples:\n")
		p.lines(r.RejectedExamples)
	}
	p.printf("Strings of length %d in the language:\n", r.Length)
	p.lines(r.StringsOfLength)
	p.printf("Number of strings with length %d in the language: %d\n", r.CountLength, r.CountOfLength)
	p.printf("Accept states: %v\n", r.AcceptStates)
	p.printf("Complement accept states: %v\n", r.ComplementAcceptStates)
	return p.err
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) lines(words []string) {
	for _, word := range words {
		p.printf("  %q\n", word)
	}
}
