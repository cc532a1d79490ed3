package season

// Resolve picks the target season for a ranking query. An explicit ID wins;
// otherwise the first active season, then the first season overall. ok is
// false when nothing matches (an unknown explicit ID included).
func Resolve(items []Season, seasonID string) (Season, bool) {
	if seasonID != "" {
		for _, item := range items {
			if item.ID == seasonID {
				return item, true
			}
		}
		return Season{}, false
	}

	for _, item := range items {
		if item.IsActive {
			return item, true
		}
	}

	if len(items) > 0 {
		return items[0], true
	}

	return Season{}, false
}
