package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/sebasmzg/characters-api/internal/middleware/auth"
	"github.com/sebasmzg/characters-api/internal/models"
)

type Deps struct {
	AuthHandler      *AuthHTTP
	CharacterHandler *CharacterHTTP
	Auth             *authmw.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.LogOut)

	characters := e.Group("/characters", d.Auth.RequireAuth)
	characters.GET("", d.CharacterHandler.GetCharacters)
	characters.GET("/:id", d.CharacterHandler.GetCharacter)
	characters.POST("", d.CharacterHandler.CreateCharacter, authmw.RequireRoles(models.RoleAdmin, models.RoleUser))
	characters.PATCH("/:id", d.CharacterHandler.PatchCharacter, authmw.RequireRoles(models.RoleAdmin))
	characters.DELETE("/:id", d.CharacterHandler.DeleteCharacter, authmw.RequireRoles(models.RoleAdmin))
}
