package remover

// Mode selects one of the four deletion strategies.
type Mode int

const (
	Standard Mode = iota
	OnlyForce
	OnlyRecursively
	RecursivelyAndForce
)

func (m Mode) String() string {
	switch m {
	case OnlyForce:
		return "only-force"
	case OnlyRecursively:
		return "only-recursively"
	case RecursivelyAndForce:
		return "recursively-and-force"
	default:
		return "standard"
	}
}

func ResolveMode(recursively, force bool) Mode {
	switch {
	case recursively && force:
		return RecursivelyAndForce
	case force:
		return OnlyForce
	case recursively:
		return OnlyRecursively
	default:
		return Standard
	}
}

// Plan is the policy the executor follows for a single removal.
type Plan struct {
	// Recursive removes a directory together with its contents.
	Recursive bool
	// Confirm asks the prompter before touching the filesystem.
	Confirm bool
	// SuppressErrors makes every filesystem failure report success.
	SuppressErrors bool
}

func (m Mode) Plan() Plan {
	force := m == OnlyForce || m == RecursivelyAndForce
	return Plan{
		Recursive:      m == OnlyRecursively || m == RecursivelyAndForce,
		Confirm:        !force,
		SuppressErrors: force,
	}
}
