package role

import "fmt"

// Get returns the role with the given ID.
// Returns ErrInvalidRole if the ID is unknown.
func Get(id string) (Role, error) {
	for _, r := range table {
		if r.ID == id {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("%w: %q", ErrInvalidRole, id)
}

// Sequence returns the role IDs sorted by sequence order ascending.
func Sequence() []string {
	ids := make([]string, len(table))
	for i, r := range table {
		ids[i] = r.ID
	}
	return ids
}

// Entry returns the ID of the first role in the sequence.
func Entry() string {
	return table[0].ID
}

// Terminal returns the ID of the last role in the sequence.
func Terminal() string {
	return table[len(table)-1].ID
}

// Next returns the ID of the role following id in the sequence.
// Returns ("", nil) when id is the terminal role.
// Returns ErrInvalidRole if id is unknown.
func Next(id string) (string, error) {
	r, err := Get(id)
	if err != nil {
		return "", err
	}
	for _, cand := range table {
		if cand.SequenceOrder == r.SequenceOrder+1 {
			return cand.ID, nil
		}
	}
	return "", nil
}

// Previous returns the ID of the role preceding id in the sequence.
// Returns ("", nil) when id is the entry role.
// Returns ErrInvalidRole if id is unknown.
func Previous(id string) (string, error) {
	r, err := Get(id)
	if err != nil {
		return "", err
	}
	for _, cand := range table {
		if cand.SequenceOrder == r.SequenceOrder-1 {
			return cand.ID, nil
		}
	}
	return "", nil
}

// IsValidTransition reports whether to is the immediate successor of from.
// Unknown IDs are simply not valid transitions.
func IsValidTransition(from, to string) bool {
	next, err := Next(from)
	if err != nil {
		return false
	}
	return next != "" && next == to
}
