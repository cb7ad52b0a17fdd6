package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	veteran := middleware.RequireRole(model.RoleVeteran)
	employer := middleware.RequireRole(model.RoleEmployer)

	r.Post("/jobs/:id/apply", auth, veteran, h.Apply)
	r.Get("/jobs/:id/applications", auth, employer, h.ListForJob)

	g := r.Group("/applications", auth)
	g.Get("/", veteran, h.ListMine)
	g.Post("/:id/withdraw", veteran, h.Withdraw)
	g.Patch("/:id/status", employer, h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	var req dto.ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body", err)
		}
	}

	app, err := h.uc.Apply(c.UserContext(), middleware.CurrentUserID(c), jobID, req)
	if err != nil {
		return fail(c, err, "failed to submit application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted",
		Data:    app,
	})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	apps, err := h.uc.ListMine(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to list applications")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get applications", Data: apps})
}

func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	apps, err := h.uc.ListForJob(c.UserContext(), middleware.CurrentUserID(c), jobID)
	if err != nil {
		return fail(c, err, "failed to list applications")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get applications", Data: apps})
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	app, err := h.uc.Withdraw(c.UserContext(), middleware.CurrentUserID(c), id)
	if err != nil {
		return fail(c, err, "failed to withdraw application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Application withdrawn", Data: app})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	app, err := h.uc.UpdateStatus(c.UserContext(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		return fail(c, err, "failed to update application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Application updated", Data: app})
}
