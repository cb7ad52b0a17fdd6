package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	g := r.Group("/auth")
	g.Post("/register", h.Register)
	g.Post("/login", h.Login)
	g.Post("/logout", auth, h.Logout)
	g.Get("/me", auth, h.Me)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	user, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "failed to register")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created",
		Data:    dto.NewUserDTO(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	resp, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "failed to login")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logged in",
		Data:    resp,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), middleware.CurrentToken(c)); err != nil {
		return fail(c, err, "failed to logout")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to load account")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get account",
		Data:    dto.NewUserDTO(user),
	})
}
