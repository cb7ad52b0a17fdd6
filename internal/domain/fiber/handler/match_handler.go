package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

type MatchHandler struct {
	uc *usecase.MatchUsecase
}

func NewMatchHandler(uc *usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/matches", auth, middleware.RequireRole(model.RoleVeteran), h.Matches)
	r.Get("/jobs/:id/candidates", auth, middleware.RequireRole(model.RoleEmployer), h.Candidates)
}

// Matches lists active postings ranked for the calling veteran, best first.
func (h *MatchHandler) Matches(c *fiber.Ctx) error {
	matches, err := h.uc.MatchesForVeteran(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to compute matches")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get matches", Data: matches})
}

func (h *MatchHandler) Candidates(c *fiber.Ctx) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	candidates, err := h.uc.CandidatesForJob(c.UserContext(), middleware.CurrentUserID(c), jobID)
	if err != nil {
		return fail(c, err, "failed to rank candidates")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get candidates", Data: candidates})
}
