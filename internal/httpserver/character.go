package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sebasmzg/characters-api/internal/logging"
	"github.com/sebasmzg/characters-api/internal/repo"
	"github.com/sebasmzg/characters-api/internal/service"
	"github.com/sebasmzg/characters-api/internal/transport"
)

type CharacterHTTP struct {
	Svc *service.CharacterService
}

func (h *CharacterHTTP) GetCharacters(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "character.get_characters")

	characters := h.Svc.List(ctx)
	if len(characters) == 0 {
		l.Warn("get_characters_failed", "status", 404, "reason", "no characters created")
		return echo.NewHTTPError(http.StatusNotFound, "No characters created")
	}

	return c.JSON(http.StatusOK, characters)
}

func (h *CharacterHTTP) GetCharacter(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "character.get_character")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("get_character_failed", "status", 404, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusNotFound, "Character not found")
	}

	character, err := h.Svc.Get(ctx, id)
	if err != nil {
		l.Warn("get_character_failed", "status", 404, "character_id", id)
		return echo.NewHTTPError(http.StatusNotFound, "Character not found")
	}

	return c.JSON(http.StatusOK, character)
}

func (h *CharacterHTTP) CreateCharacter(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "character.create_character")

	var req transport.CreateCharacterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_character_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	character, err := h.Svc.Create(ctx, req.Name, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("create_character_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create character")
	}

	return c.JSON(http.StatusCreated, character)
}

func (h *CharacterHTTP) PatchCharacter(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "character.patch_character")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("patch_character_error", "status", 404, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusNotFound, "Character not found")
	}

	var req transport.PatchCharacterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_character_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	character, err := h.Svc.Patch(ctx, id, service.CharacterPatch{
		Name:     req.Name,
		LastName: req.LastName,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("patch_character_error", "status", 404, "character_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Character not found")
		}
		l.Error("patch_character_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update character")
	}

	return c.JSON(http.StatusOK, character)
}

func (h *CharacterHTTP) DeleteCharacter(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "character.delete_character")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("delete_character_error", "status", 404, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusNotFound, "Character not found")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("delete_character_error", "status", 404, "character_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Character not found")
		}
		l.Error("delete_character_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete character")
	}

	return c.NoContent(http.StatusNoContent)
}
