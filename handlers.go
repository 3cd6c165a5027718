package flashdeck

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleCards serves the card list as JSON, optionally filtered by category.
// "All" matches the filter sentinel the browser UI uses and means no filter.
func (a *App) handleCards(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "All" {
		category = ""
	}
	cards, err := a.Cache.ListCards(category)
	if err != nil {
		return err
	}
	if cards == nil {
		cards = []FlashCard{}
	}
	a.sink.CardsServed(len(cards))
	return c.JSON(http.StatusOK, cards)
}

// handleCategories serves the category list with "All" prepended, matching
// what the filter UI expects.
func (a *App) handleCategories(c echo.Context) error {
	cats, err := a.Cache.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, append([]string{"All"}, cats...))
}

// handleHealth reports liveness plus card store reachability.
func (a *App) handleHealth(c echo.Context) error {
	if err := a.Store.db.Ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
