package repo

import (
	"sort"
	"sync"

	"github.com/sebasmzg/characters-api/internal/models"
)

type CharacterRepo struct {
	mu         sync.RWMutex
	characters map[int64]models.Character
}

func NewCharacterRepo() *CharacterRepo {
	return &CharacterRepo{characters: make(map[int64]models.Character)}
}

func (r *CharacterRepo) List() []models.Character {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Character, 0, len(r.characters))
	for _, ch := range r.characters {
		items = append(items, ch)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *CharacterRepo) Get(id int64) (models.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.characters[id]
	if !ok {
		return models.Character{}, ErrNotFound
	}
	return ch, nil
}

func (r *CharacterRepo) Create(ch models.Character) models.Character {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch.ID = NextID()
	r.characters[ch.ID] = ch
	return ch
}

func (r *CharacterRepo) Update(ch models.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[ch.ID]; !ok {
		return ErrNotFound
	}
	r.characters[ch.ID] = ch
	return nil
}

func (r *CharacterRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[id]; !ok {
		return ErrNotFound
	}
	delete(r.characters, id)
	return nil
}
