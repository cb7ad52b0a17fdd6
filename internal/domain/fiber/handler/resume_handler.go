package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

type ResumeHandler struct {
	uc      *usecase.ResumeUsecase
	maxSize int64
}

func NewResumeHandler(uc *usecase.ResumeUsecase, maxSize int64) *ResumeHandler {
	return &ResumeHandler{uc: uc, maxSize: maxSize}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	g := r.Group("/resume", auth, middleware.RequireRole(model.RoleVeteran))
	g.Post("/parse", h.Parse)
	g.Post("/generate", middleware.RateLimiter(1, 4*time.Second), h.Generate)
}

// Parse reads the multipart "file" field and extracts a service record.
// With ?apply=true the record is merged into the caller's profile.
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	data, filename, uerr := h.readUpload(c, "file")
	if uerr != nil {
		return uerr.respond(c)
	}

	out, err := h.uc.Parse(c.UserContext(), middleware.CurrentUserID(c), filename, data, c.QueryBool("apply"))
	if err != nil {
		return fail(c, err, "failed to parse document")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success parse document", Data: out})
}

func (h *ResumeHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to generate resume")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success generate resume", Data: out})
}

type uploadError struct {
	code    int
	message string
	err     error
}

func (e *uploadError) Error() string { return e.message }
func (e *uploadError) Unwrap() error { return e.err }

func (e *uploadError) respond(c *fiber.Ctx) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{Code: e.code, Message: e.message}, e.err)
}

func (h *ResumeHandler) readUpload(c *fiber.Ctx, field string) ([]byte, string, *uploadError) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, "", &uploadError{fiber.StatusBadRequest, fmt.Sprintf("%s file is required", field), err}
	}
	if h.maxSize > 0 && file.Size > h.maxSize {
		msg := fmt.Sprintf("%s file is too large (max %d MB)", field, h.maxSize/(1024*1024))
		return nil, "", &uploadError{fiber.StatusRequestEntityTooLarge, msg, nil}
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", &uploadError{fiber.StatusBadRequest, fmt.Sprintf("cannot read %s file", field), err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", &uploadError{fiber.StatusBadRequest, fmt.Sprintf("cannot read %s file", field), err}
	}
	return data, file.Filename, nil
}
