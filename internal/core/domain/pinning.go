package domain

// PinnedPackage is one package of a shell pinned to an exact nixpkgs snapshot.
type PinnedPackage struct {
	// AttrPath is the Nix attribute path within the pinned snapshot.
	AttrPath string

	// Rev is the nixpkgs revision the attribute is taken from.
	Rev string
}

// PinnedShell is a dev shell with every reference resolved to a pin for one
// system. It is the evaluator's input and carries no unresolved constraints.
type PinnedShell struct {
	// ID is the deterministic shell identifier, see GenerateShellID.
	ID string

	// Name is the dependency the shell belongs to.
	Name string

	// System is the Nix system the pins are valid for.
	System string

	// BuildInputs are the pinned compile/link inputs, in declared order.
	BuildInputs []PinnedPackage

	// NativeBuildInputs are the pinned tool-chain inputs, in declared order.
	NativeBuildInputs []PinnedPackage
}

// PinShell resolves a dev shell's references against the lockfile for the
// given system. Declared order is preserved in both input lists.
func PinShell(shell DevShell, lock *Lockfile, system string) (PinnedShell, error) {
	pin := func(refs []PackageRef) ([]PinnedPackage, error) {
		pinned := make([]PinnedPackage, 0, len(refs))
		for _, ref := range refs {
			pkg, err := lock.Lookup(ref)
			if err != nil {
				return nil, err
			}
			info, err := pkg.InfoForSystem(system)
			if err != nil {
				return nil, err
			}
			pinned = append(pinned, PinnedPackage{
				AttrPath: info.AttrPath.String(),
				Rev:      info.Rev.String(),
			})
		}
		return pinned, nil
	}

	buildInputs, err := pin(shell.BuildInputs)
	if err != nil {
		return PinnedShell{}, err
	}
	nativeBuildInputs, err := pin(shell.NativeBuildInputs)
	if err != nil {
		return PinnedShell{}, err
	}

	return PinnedShell{
		ID:                GenerateShellID(shell),
		Name:              shell.Name.String(),
		System:            system,
		BuildInputs:       buildInputs,
		NativeBuildInputs: nativeBuildInputs,
	}, nil
}
