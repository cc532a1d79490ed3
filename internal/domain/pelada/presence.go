package pelada

// presenceVote is one attendance representation consulted during resolution.
// ok reports a definitive answer; when false the next representation decides.
type presenceVote func(p Pelada, playerID string) (present bool, ok bool)

// presenceChain is consulted in order and stops at the first definitive
// answer. The session schema evolved over time and old, new, and derived
// shapes must all be honored without a migration step, so the chain encodes
// the documented precedence instead of merging representations.
var presenceChain = []presenceVote{
	presenceFromEntries,
	presenceFromLegacyRoster,
	presenceFromTeams,
}

// IsPresent reports whether the player attended the session. Only an
// affirmative entry is definitive: an explicit Present=false in one
// representation still lets a later one count the player in.
func IsPresent(p Pelada, playerID string) bool {
	for _, vote := range presenceChain {
		if present, ok := vote(p, playerID); ok {
			return present
		}
	}

	return false
}

func presenceFromEntries(p Pelada, playerID string) (bool, bool) {
	entry, found := p.PresenceEntry(playerID)
	if found && entry.Present {
		return true, true
	}

	return false, false
}

func presenceFromLegacyRoster(p Pelada, playerID string) (bool, bool) {
	for _, entry := range p.PresentPlayers {
		if entry.PlayerID == playerID && entry.Present {
			return true, true
		}
	}

	return false, false
}

func presenceFromTeams(p Pelada, playerID string) (bool, bool) {
	for _, team := range p.Teams {
		for _, id := range team.PlayerIDs {
			if id == playerID {
				return true, true
			}
		}
	}

	return false, false
}
