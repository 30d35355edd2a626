//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
)

func TestClientRepo_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	repo := NewClientRepo(testPool)
	ctx := context.Background()

	t.Run("should perform full CRUD cycle", func(t *testing.T) {
		cleanup(t)

		// 1. Create a new client
		newClient, err := model.NewClient("Ana", "Reyes", "4550123", "0981123456", "ana@example.com", model.Today())
		if err != nil {
			t.Fatalf("model.NewClient() failed: %v", err)
		}
		if err := repo.Save(ctx, nil, newClient); err != nil {
			t.Fatalf("Failed to save new client: %v", err)
		}
		if newClient.ID == 0 {
			t.Fatal("Expected an assigned id after insert")
		}

		// 2. Read the client back by national id
		found, err := repo.FindByNationalID(ctx, nil, "4550123")
		if err != nil {
			t.Fatalf("Failed to find client by national id: %v", err)
		}
		if found.ID != newClient.ID {
			t.Errorf("Expected client ID to be %d, got %d", newClient.ID, found.ID)
		}

		// 3. Update the surname
		found.Surname = "Reyes Benitez"
		if err := repo.Save(ctx, nil, found); err != nil {
			t.Fatalf("Failed to update client: %v", err)
		}
		updated, err := repo.FindByID(ctx, nil, found.ID)
		if err != nil {
			t.Fatalf("Failed to find client by ID: %v", err)
		}
		if updated.Surname != "Reyes Benitez" {
			t.Errorf("Expected surname 'Reyes Benitez', got '%s'", updated.Surname)
		}

		// 4. Delete and verify it is gone
		if err := repo.Delete(ctx, nil, found.ID); err != nil {
			t.Fatalf("Failed to delete client: %v", err)
		}
		if _, err := repo.FindByID(ctx, nil, found.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("should reject duplicate national id", func(t *testing.T) {
		cleanup(t)

		first, _ := model.NewClient("Ana", "Reyes", "4550123", "", "", model.Today())
		if err := repo.Save(ctx, nil, first); err != nil {
			t.Fatalf("Save first client failed: %v", err)
		}

		dup, _ := model.NewClient("Maria", "Reyes", "4550123", "", "", model.Today())
		if err := repo.Save(ctx, nil, dup); !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("Expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("should list clients ordered by surname", func(t *testing.T) {
		cleanup(t)

		c1, _ := model.NewClient("Zulma", "Acosta", "111", "", "", model.Today())
		c2, _ := model.NewClient("Ana", "Benitez", "222", "", "", model.Today())
		if err := repo.Save(ctx, nil, c2); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := repo.Save(ctx, nil, c1); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		clients, err := repo.List(ctx, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(clients) != 2 {
			t.Fatalf("expected 2 clients, got %d", len(clients))
		}
		if clients[0].Surname != "Acosta" {
			t.Errorf("expected 'Acosta' first, got '%s'", clients[0].Surname)
		}
	})
}
