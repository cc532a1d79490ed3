package player

import (
	"fmt"
	"time"
)

// Category separates regular paying members from guests.
type Category string

const (
	CategoryMensalista Category = "mensalista"
	CategoryConvidado  Category = "convidado"
)

var AllCategories = map[Category]struct{}{
	CategoryMensalista: {},
	CategoryConvidado:  {},
}

// Player is one member of the league roster.
type Player struct {
	ID        string
	Name      string
	Category  Category
	IsActive  bool
	CreatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllCategories[p.Category]; !ok {
		return fmt.Errorf("invalid player category: %s", p.Category)
	}

	return nil
}
