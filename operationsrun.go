package automaton

// Run Returns true if d accepts s. An undefined transition counts as a rejection here; use
// DFA.Accepts to tell the two apart.
func Run(d *DFA, s string) bool {
	ok, err := d.Accepts(s)
	return err == nil && ok
}
