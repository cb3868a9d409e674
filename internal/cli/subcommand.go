package cli

// Subcommand selects what cargo-llvm-cov does after parsing.
type Subcommand int

const (
	Test Subcommand = iota // default
	Run
	ShowEnv
	Clean
	Nextest
	Demangle // internal; takes no arguments
)

func (s Subcommand) String() string {
	switch s {
	case Test:
		return "test"
	case Run:
		return "run"
	case ShowEnv:
		return "show-env"
	case Clean:
		return "clean"
	case Nextest:
		return "nextest"
	case Demangle:
		return "demangle"
	default:
		return "unknown"
	}
}

// ParseKeyword maps a bare value to the subcommand it names.
func ParseKeyword(text string) (Subcommand, bool) {
	switch text {
	case "test", "t":
		return Test, true
	case "run", "r":
		return Run, true
	case "show-env":
		return ShowEnv, true
	case "clean":
		return Clean, true
	case "nextest":
		return Nextest, true
	case "demangle":
		return Demangle, true
	default:
		return 0, false
	}
}
