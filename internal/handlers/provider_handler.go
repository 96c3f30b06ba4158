package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/hourbook/hourbook/internal/domain/schedule"
	"github.com/hourbook/hourbook/internal/httperr"
	"github.com/hourbook/hourbook/internal/httpresp"
	"github.com/hourbook/hourbook/internal/middleware"
	ucScheduling "github.com/hourbook/hourbook/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type ProviderHandler struct {
	listProviders   *ucScheduling.ListProviders
	dayAvailability *ucScheduling.GetDayAvailability
}

func NewProviderHandler(
	listProviders *ucScheduling.ListProviders,
	dayAvailability *ucScheduling.GetDayAvailability,
) *ProviderHandler {
	return &ProviderHandler{
		listProviders:   listProviders,
		dayAvailability: dayAvailability,
	}
}

// ======================================================
// DTOs
// ======================================================

type ProviderDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

// ======================================================
// GET /providers
// ======================================================

func (h *ProviderHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	providers, err := h.listProviders.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Erro ao listar prestadores.")
		return
	}

	out := make([]ProviderDTO, 0, len(providers))
	for _, p := range providers {
		out = append(out, ProviderDTO{
			ID:        p.ID,
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
		})
	}

	httpresp.OK(c, out)
}

// ======================================================
// GET /providers/:id/day-availability?year&month&day
// ======================================================

func (h *ProviderHandler) DayAvailability(c *gin.Context) {
	providerID := c.Param("id")

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	day, errD := strconv.Atoi(c.Query("day"))
	if errY != nil || errM != nil || errD != nil {
		httperr.BadRequest(c, "invalid_date_params", "Ano, mês e dia são obrigatórios.")
		return
	}

	slots, err := h.dayAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProviderID: providerID,
		Year:       year,
		Month:      month,
		Day:        day,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao consultar disponibilidade.")
		return
	}

	httpresp.OK(c, slots)
}
