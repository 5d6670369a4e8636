package player

// Player is one registered participant.
type Player struct {
	ID          string
	DisplayName string
}

// Directory maps player id to display name. The directory is authoritative
// for who exists; weekly score files are authoritative for what they scored.
type Directory map[string]string

func NewDirectory(players []Player) Directory {
	out := make(Directory, len(players))
	for _, p := range players {
		out[p.ID] = p.DisplayName
	}
	return out
}

// NameFor resolves a display name, returning the empty string for ids the
// directory does not know. Ranking still proceeds on the id in that case.
func (d Directory) NameFor(playerID string) string {
	return d[playerID]
}
