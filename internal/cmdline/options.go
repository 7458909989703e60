package cmdline

import "strings"

// ValueKind declares whether an option takes a value.
type ValueKind int

const (
	ValueBoolean ValueKind = iota
	ValueString
)

func (k ValueKind) String() string {
	if k == ValueString {
		return "string"
	}
	return "boolean"
}

// Schema maps option names (single letters for -x, words for --name) to kinds.
type Schema map[string]ValueKind

// Args is a parsed argument list.
type Args struct {
	Operands []string          // Positional arguments in order
	Flags    map[string]bool   // Boolean options, including unknown ones
	Values   map[string]string // String-valued options
}

// Bool reports whether a boolean flag was given.
func (a Args) Bool(name string) bool {
	return a.Flags[name]
}

// Value returns a string option.
func (a Args) Value(name string) (string, bool) {
	v, ok := a.Values[name]
	return v, ok
}

// Operand returns the i-th positional argument.
func (a Args) Operand(i int) (string, bool) {
	if i < 0 || i >= len(a.Operands) {
		return "", false
	}
	return a.Operands[i], true
}

// ParseArgs classifies argument tokens against a schema.
//
//   - "--" ends option parsing; everything after it is an operand.
//   - "--name=value" sets a value (booleans read anything but "false" as true).
//   - "--name" is a flag, or takes the next token when the schema says string.
//   - "-abc" is the flags a, b and c. A string option inside a cluster takes the
//     rest of the cluster, or the next token when nothing follows it.
//   - Everything else, including a lone "-", is an operand.
//
// Options missing from the schema are kept as boolean flags, never rejected.
func ParseArgs(tokens []string, schema Schema) Args {
	args := Args{
		Operands: []string{},
		Flags:    map[string]bool{},
		Values:   map[string]string{},
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--":
			args.Operands = append(args.Operands, tokens[i+1:]...)
			return args

		case strings.HasPrefix(tok, "--"):
			name, value, hasValue := strings.Cut(tok[2:], "=")
			kind, known := schema[name]
			switch {
			case known && kind == ValueString:
				if !hasValue && i+1 < len(tokens) {
					i++
					value = tokens[i]
				}
				args.Values[name] = value
			case hasValue && !known:
				args.Values[name] = value
			case hasValue:
				args.Flags[name] = value != "false"
			default:
				args.Flags[name] = true
			}

		case len(tok) > 1 && tok[0] == '-':
			cluster := []rune(tok[1:])
			for j, r := range cluster {
				name := string(r)
				if kind, ok := schema[name]; ok && kind == ValueString {
					rest := string(cluster[j+1:])
					if rest == "" && i+1 < len(tokens) {
						i++
						rest = tokens[i]
					}
					args.Values[name] = rest
					break
				}
				args.Flags[name] = true
			}

		default:
			args.Operands = append(args.Operands, tok)
		}
	}
	return args
}
