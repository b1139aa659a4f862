package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weblior/contact-api/internal/contact/domain"
	"github.com/weblior/contact-api/internal/contact/service"
)

// Handler bundles the dependencies for contact HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) submit(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidJSON})
		return
	}

	accepted, err := h.svc.Submit(c.Request.Context(), body, ClientID(c.Request))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{Message: MsgSubmitted, ID: accepted.ID})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var rej *domain.Rejection
	if !errors.As(err, &rej) {
		// Server-side defect: full detail in the log, generic message out.
		service.NewLogger(c.Request.Context()).LogError("submit", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalError})
		return
	}

	switch rej.Kind {
	case domain.KindRateLimited:
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: MsgRateLimited})
	case domain.KindBadRequest:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidJSON})
	case domain.KindValidationFailed:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgValidation, Details: rej.Details})
	case domain.KindSpamDetected:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgSpam})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalError})
	}
}

func (h *Handler) probe(c *gin.Context) {
	c.JSON(http.StatusOK, ProbeResponse{Message: MsgProbe})
}
