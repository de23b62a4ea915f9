package signals

import "fmt"

// InputError is one of the two fatal aggregation errors: the caller
// supplied neither a team nor a player name, so there is nothing to
// resolve against.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// ResolutionError is the other fatal aggregation error: a player name
// was given but no team-affiliated candidate could be found. Never
// degraded into a guessed team.
type ResolutionError struct {
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not resolve a team for player %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("could not resolve a team for player %q", e.Name)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
