package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	employer := middleware.RequireRole(model.RoleEmployer)

	g := r.Group("/jobs")
	g.Get("/", h.List)
	g.Get("/search", h.Search)
	g.Get("/mine", auth, employer, h.ListMine)
	g.Get("/:id", h.Get)
	g.Post("/", auth, employer, h.Create)
	g.Put("/:id", auth, employer, h.Update)
	g.Post("/:id/close", auth, employer, h.Close)
	g.Delete("/:id", auth, employer, h.Delete)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	var q dto.JobQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query", err)
	}
	jobs, page, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return fail(c, err, "failed to list jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get jobs",
		Data:       jobs,
		Pagination: page,
	})
}

func (h *JobHandler) Search(c *fiber.Ctx) error {
	jobs, err := h.uc.Search(c.UserContext(), c.Query("q"), c.QueryInt("limit"))
	if err != nil {
		return fail(c, err, "failed to search jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success search jobs", Data: jobs})
}

func (h *JobHandler) ListMine(c *fiber.Ctx) error {
	jobs, err := h.uc.ListMine(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to list jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get jobs", Data: jobs})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	job, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "failed to load job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get job", Data: job})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	job, err := h.uc.Create(c.UserContext(), middleware.CurrentUserID(c), req)
	if err != nil {
		return fail(c, err, "failed to create job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job posted",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	job, err := h.uc.Update(c.UserContext(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		return fail(c, err, "failed to update job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Job updated", Data: job})
}

func (h *JobHandler) Close(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	job, err := h.uc.Close(c.UserContext(), middleware.CurrentUserID(c), id)
	if err != nil {
		return fail(c, err, "failed to close job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Job closed", Data: job})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err, "")
	}
	if err := h.uc.Delete(c.UserContext(), middleware.CurrentUserID(c), id); err != nil {
		return fail(c, err, "failed to delete job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Job deleted"})
}
