package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

type MessageHandler struct {
	uc *usecase.MessageUsecase
}

func NewMessageHandler(uc *usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	g := r.Group("/messages", auth)
	g.Post("/", h.Send)
	g.Get("/threads", h.Threads)
	g.Get("/:userId", h.Conversation)
	g.Post("/:userId/read", h.MarkRead)
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	msg, err := h.uc.Send(c.UserContext(), middleware.CurrentUserID(c), req)
	if err != nil {
		return fail(c, err, "failed to send message")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Message sent",
		Data:    msg,
	})
}

func (h *MessageHandler) Threads(c *fiber.Ctx) error {
	threads, err := h.uc.Threads(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return fail(c, err, "failed to list conversations")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Success get conversations", Data: threads})
}

func (h *MessageHandler) Conversation(c *fiber.Ctx) error {
	other, err := paramID(c, "userId")
	if err != nil {
		return fail(c, err, "")
	}
	msgs, page, err := h.uc.Conversation(c.UserContext(), middleware.CurrentUserID(c), other,
		c.QueryInt("page"), c.QueryInt("page_size"))
	if err != nil {
		return fail(c, err, "failed to load conversation")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get messages",
		Data:       msgs,
		Pagination: page,
	})
}

func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	other, err := paramID(c, "userId")
	if err != nil {
		return fail(c, err, "")
	}
	res, err := h.uc.MarkRead(c.UserContext(), middleware.CurrentUserID(c), other)
	if err != nil {
		return fail(c, err, "failed to mark conversation read")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Conversation marked read", Data: res})
}
