package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/httpresp"
	"github.com/AuMiauServices/petshop-api/internal/middleware"
	usecase "github.com/AuMiauServices/petshop-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create  *usecase.CreateAppointment
	cancel  *usecase.CancelAppointment
	advance *usecase.AdvanceStatus
	list    *usecase.ListAppointments
}

func NewAppointmentHandler(
	create *usecase.CreateAppointment,
	cancel *usecase.CancelAppointment,
	advance *usecase.AdvanceStatus,
	list *usecase.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:  create,
		cancel:  cancel,
		advance: advance,
		list:    list,
	}
}

type createAppointmentRequest struct {
	PetID         uint      `json:"petId"`
	ServiceIDs    []uint    `json:"serviceIds"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}
	if req.PetID == 0 {
		httperr.Unprocessable(c, "O pet é obrigatório!")
		return
	}
	if req.ScheduledDate.IsZero() {
		httperr.Unprocessable(c, "A data do agendamento é obrigatória!")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		UserID:        userID,
		PetID:         req.PetID,
		ServiceIDs:    req.ServiceIDs,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":         "Agendamento criado com sucesso!",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Agendamento não encontrado!")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":         "Agendamento cancelado com sucesso!",
		"appointment": ap,
	})
}

type advanceStatusRequest struct {
	Status string `json:"status"`
}

func (h *AppointmentHandler) AdvanceStatus(c *gin.Context) {
	actorID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Agendamento não encontrado!")
		return
	}

	var req advanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}

	ap, err := h.advance.Execute(c.Request.Context(), actorID, id, req.Status)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":         "Status atualizado com sucesso!",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	appointments, err := h.list.Own(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c)
		return
	}

	httpresp.List(c, "appointments", appointments)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c)
		return
	}

	httpresp.List(c, "appointments", appointments)
}

// writeAppointmentError traduz o código de negócio em resposta HTTP.
func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "pet_not_found"):
		httperr.NotFound(c, "Pet não encontrado!")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "Um ou mais serviços não foram encontrados!")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "Agendamento não encontrado!")
	case httperr.IsBusiness(err, "no_services"):
		httperr.Unprocessable(c, "Informe ao menos um serviço!")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.Unprocessable(c, "Status inválido!")
	case httperr.IsBusiness(err, "already_cancelled"):
		httperr.Conflict(c, "O agendamento já foi cancelado!")
	case httperr.IsBusiness(err, "appointment_cancelled"):
		httperr.Conflict(c, "Não é possível alterar um agendamento cancelado!")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "O agendamento não permite esta operação!")
	default:
		httperr.Internal(c)
	}
}
