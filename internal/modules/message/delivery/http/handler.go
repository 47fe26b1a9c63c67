package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rakandev/portfolio-cms/internal/modules/message/dto"
	message "github.com/rakandev/portfolio-cms/internal/modules/message/service"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/ratelimiter"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/validator"
)

type MessageHandler struct {
	service message.MessageService
}

func NewMessageHandler(service message.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Submit handles the public contact form.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.PublicValidationError(c, validator.FieldErrors(err))
		return
	}

	created, err := h.service.SubmitMessage(c.Request.Context(), ratelimiter.ClientIP(c.Request), req)
	if err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicCreated(c, created)
}

func (h *MessageHandler) List(c *gin.Context) {
	var filter dto.MessageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	messages, pagination, err := h.service.GetMessages(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, messages, pagination)
}

func (h *MessageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	msg, err := h.service.GetMessage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, msg)
}

func (h *MessageHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	updated, err := h.service.UpdateMessage(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "message deleted successfully")
}
