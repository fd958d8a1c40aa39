package service

import (
	"context"
	"fmt"

	"github.com/sebasmzg/characters-api/internal/events"
	"github.com/sebasmzg/characters-api/internal/logging"
	"github.com/sebasmzg/characters-api/internal/models"
	"github.com/sebasmzg/characters-api/internal/repo"
)

type CharacterService struct {
	Repo     *repo.CharacterRepo
	Producer *events.Producer
}

type CharacterPatch struct {
	Name     *string
	LastName *string
}

func (s *CharacterService) List(ctx context.Context) []models.Character {
	return s.Repo.List()
}

func (s *CharacterService) Get(ctx context.Context, id int64) (models.Character, error) {
	return s.Repo.Get(id)
}

func (s *CharacterService) Create(ctx context.Context, name, lastName string) (models.Character, error) {
	l := logging.FromContext(ctx).With("svc", "character.create")

	if name == "" || lastName == "" {
		l.Warn("create_character_failed", "status", 400, "reason", "empty name or lastName")
		return models.Character{}, fmt.Errorf("%w: name and lastName are required", ErrValidation)
	}

	ch := s.Repo.Create(models.Character{Name: name, LastName: lastName})

	s.publishCharacter(ctx, "character_created", ch)

	l.Info("create_character_successful", "character_id", ch.ID)
	return ch, nil
}

func (s *CharacterService) Patch(ctx context.Context, id int64, patch CharacterPatch) (models.Character, error) {
	l := logging.FromContext(ctx).With("svc", "character.patch")

	ch, err := s.Repo.Get(id)
	if err != nil {
		return models.Character{}, err
	}

	if patch.Name != nil {
		ch.Name = *patch.Name
	}
	if patch.LastName != nil {
		ch.LastName = *patch.LastName
	}

	if err := s.Repo.Update(ch); err != nil {
		return models.Character{}, err
	}

	s.publishCharacter(ctx, "character_updated", ch)

	l.Info("patch_character_successful", "character_id", ch.ID)
	return ch, nil
}

func (s *CharacterService) Delete(ctx context.Context, id int64) error {
	l := logging.FromContext(ctx).With("svc", "character.delete")

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	s.publishCharacter(ctx, "character_deleted", models.Character{ID: id})

	l.Info("delete_character_successful", "character_id", id)
	return nil
}

func (s *CharacterService) publishCharacter(ctx context.Context, eventType string, ch models.Character) {
	event := map[string]interface{}{
		"type":        eventType,
		"characterID": ch.ID,
	}
	if err := s.Producer.PublishEvent(ctx, fmt.Sprint(ch.ID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
