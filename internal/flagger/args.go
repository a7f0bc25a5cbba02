package flagger

// Args is the part of the command line the dispatcher looks at: the first
// token and, when present, the one after it.
type Args struct {
	Flag       string
	Operand    string
	HasOperand bool
}

// ParseArgs builds Args from argv with the program name already stripped.
// Tokens past the operand are ignored.
func ParseArgs(argv []string) Args {
	var a Args
	if len(argv) > 0 {
		a.Flag = argv[0]
	}
	if len(argv) > 1 {
		a.Operand = argv[1]
		a.HasOperand = true
	}
	return a
}
