package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
)

type PeladaRepository struct {
	mu     sync.RWMutex
	items  map[string]pelada.Pelada
	orders []string
}

func NewPeladaRepository(peladas []pelada.Pelada) *PeladaRepository {
	items := make(map[string]pelada.Pelada, len(peladas))
	orders := make([]string, 0, len(peladas))

	for _, p := range peladas {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PeladaRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PeladaRepository) List(_ context.Context) ([]pelada.Pelada, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pelada.Pelada, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *PeladaRepository) ListBySeason(_ context.Context, seasonID string) ([]pelada.Pelada, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pelada.Pelada, 0, len(r.orders))
	for _, id := range r.orders {
		if item := r.items[id]; item.SeasonID == seasonID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PeladaRepository) GetByID(_ context.Context, peladaID string) (pelada.Pelada, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[peladaID]
	if !ok {
		return pelada.Pelada{}, false, nil
	}

	return p, true, nil
}

func (r *PeladaRepository) Create(_ context.Context, item pelada.Pelada) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("pelada %s already exists", item.ID)
	}

	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *PeladaRepository) Update(_ context.Context, item pelada.Pelada) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return fmt.Errorf("pelada %s does not exist", item.ID)
	}

	r.items[item.ID] = item

	return nil
}

func (r *PeladaRepository) Delete(_ context.Context, peladaID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[peladaID]; !exists {
		return fmt.Errorf("pelada %s does not exist", peladaID)
	}

	delete(r.items, peladaID)
	for i, id := range r.orders {
		if id == peladaID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
