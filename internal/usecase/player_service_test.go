package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/peladahub/pelada-league/internal/domain/player"
)

func TestPlayerService_CreateNormalizesCategory(t *testing.T) {
	repo := &stubPlayerRepository{}
	service := NewPlayerService(repo, &stubIDGenerator{})

	created, err := service.Create(context.Background(), PlayerInput{
		Name:     "  Carlos  ",
		Category: " Mensalista ",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Name != "Carlos" {
		t.Fatalf("name = %q, want trimmed", created.Name)
	}
	if created.Category != player.CategoryMensalista {
		t.Fatalf("category = %q, want %q", created.Category, player.CategoryMensalista)
	}
}

func TestPlayerService_CreateRejectsUnknownCategory(t *testing.T) {
	service := NewPlayerService(&stubPlayerRepository{}, &stubIDGenerator{})

	_, err := service.Create(context.Background(), PlayerInput{Name: "Carlos", Category: "socio"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Create error = %v, want ErrInvalidInput", err)
	}
}

func TestPlayerService_Update(t *testing.T) {
	repo := &stubPlayerRepository{items: []player.Player{{
		ID:       "p1",
		Name:     "Carlos",
		Category: player.CategoryConvidado,
		IsActive: true,
	}}}
	service := NewPlayerService(repo, &stubIDGenerator{})

	updated, err := service.Update(context.Background(), "p1", PlayerInput{
		Name:     "Carlos Silva",
		Category: string(player.CategoryMensalista),
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Carlos Silva" || updated.Category != player.CategoryMensalista || updated.IsActive {
		t.Fatalf("unexpected updated player: %+v", updated)
	}
	if repo.items[0].Name != "Carlos Silva" {
		t.Fatalf("update did not persist, stored %+v", repo.items[0])
	}
}

func TestPlayerService_GetByIDNotFound(t *testing.T) {
	service := NewPlayerService(&stubPlayerRepository{}, &stubIDGenerator{})

	if _, err := service.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID error = %v, want ErrNotFound", err)
	}
}

func TestPlayerService_Delete(t *testing.T) {
	repo := &stubPlayerRepository{items: []player.Player{{
		ID:       "p1",
		Name:     "Carlos",
		Category: player.CategoryMensalista,
	}}}
	service := NewPlayerService(repo, &stubIDGenerator{})

	if err := service.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("player not removed, %d items remain", len(repo.items))
	}
}
