package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	veteran := middleware.RequireRole(model.RoleVeteran)
	employer := middleware.RequireRole(model.RoleEmployer)

	g := r.Group("/profile", auth)
	g.Get("/veteran", veteran, h.GetVeteran)
	g.Put("/veteran", veteran, h.SaveVeteran)
	g.Get("/employer", employer, h.GetEmployer)
	g.Put("/employer", employer, h.SaveEmployer)

	r.Get("/veterans/:id", auth, employer, h.GetVeteranByID)
}

func (h *ProfileHandler) GetVeteran(c *fiber.Ctx) error {
	p, err := h.uc.GetVeteranProfile(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get profile", Data: p})
}

func (h *ProfileHandler) SaveVeteran(c *fiber.Ctx) error {
	var req dto.VeteranProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	p, err := h.uc.SaveVeteranProfile(c.UserContext(), middleware.CurrentUserID(c), req)
	if err != nil {
		return fail(c, err, "failed to save profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Profile saved", Data: p})
}

// GetVeteranByID lets employers view a candidate's profile.
func (h *ProfileHandler) GetVeteranByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	p, err := h.uc.GetVeteranProfile(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get profile", Data: p})
}

func (h *ProfileHandler) GetEmployer(c *fiber.Ctx) error {
	p, err := h.uc.GetEmployerProfile(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get profile", Data: p})
}

func (h *ProfileHandler) SaveEmployer(c *fiber.Ctx) error {
	var req dto.EmployerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	p, err := h.uc.SaveEmployerProfile(c.UserContext(), middleware.CurrentUserID(c), req)
	if err != nil {
		return fail(c, err, "failed to save profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Profile saved", Data: p})
}
