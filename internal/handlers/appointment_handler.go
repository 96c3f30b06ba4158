package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hourbook/hourbook/internal/httperr"
	"github.com/hourbook/hourbook/internal/middleware"
	ucScheduling "github.com/hourbook/hourbook/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createAppointment *ucScheduling.CreateAppointment
}

func NewAppointmentHandler(createAppointment *ucScheduling.CreateAppointment) *AppointmentHandler {
	return &AppointmentHandler{createAppointment: createAppointment}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProviderID string    `json:"provider_id" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
}

// ======================================================
// POST /appointments
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Prestador e data são obrigatórios.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	ap, err := h.createAppointment.Execute(c.Request.Context(), ucScheduling.CreateAppointmentInput{
		ProviderID: req.ProviderID,
		UserID:     userID,
		Date:       req.Date,
	})
	if err != nil {
		if httperr.FromBusiness(c, err, "Não foi possível criar o agendamento.") {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(201, ap)
}
