package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type TournamentHandler struct {
	store storage.Store
}

func NewTournamentHandler(store storage.Store) *TournamentHandler {
	return &TournamentHandler{store: store}
}

func (h *TournamentHandler) List(c *fiber.Ctx) error {
	out, err := h.store.GetTournaments(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *TournamentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid tournament id")
	}

	t, err := h.store.GetTournamentByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Tournament not found")
	}
	return c.JSON(t)
}

func (h *TournamentHandler) Create(c *fiber.Ctx) error {
	var t models.Tournament
	if err := c.BodyParser(&t); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if t.Name == "" {
		return badRequest(c, "name is required")
	}

	created, err := h.store.CreateTournament(c.Context(), t)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Outfits returns the appearances recorded for one tournament.
func (h *TournamentHandler) Outfits(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid tournament id")
	}

	out, err := h.store.GetTournamentOutfitsByTournament(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *TournamentHandler) ListOutfits(c *fiber.Ctx) error {
	out, err := h.store.GetTournamentOutfits(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *TournamentHandler) GetOutfit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid outfit id")
	}

	o, err := h.store.GetTournamentOutfitByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Outfit not found")
	}
	return c.JSON(o)
}

func (h *TournamentHandler) CreateOutfit(c *fiber.Ctx) error {
	var o models.TournamentOutfit
	if err := c.BodyParser(&o); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if o.CelebrityID == 0 || o.TournamentID == 0 {
		return badRequest(c, "celebrityId and tournamentId are required")
	}

	if _, err := h.store.GetCelebrityByID(c.Context(), o.CelebrityID); err != nil {
		return storeError(c, err, "Celebrity not found")
	}
	if _, err := h.store.GetTournamentByID(c.Context(), o.TournamentID); err != nil {
		return storeError(c, err, "Tournament not found")
	}

	created, err := h.store.CreateTournamentOutfit(c.Context(), o)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
