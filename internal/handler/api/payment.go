package api

import (
	"net/http"

	reqdto "github.com/nataliadudina/bike-rental/internal/handler/dto/request"
	resdto "github.com/nataliadudina/bike-rental/internal/handler/dto/response"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Pay for a rental
// @Description Opens a checkout session for a returned rental and returns its payment link
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Rental to pay for"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	p, err := h.cmds.CreatePayment(c.Request.Context(), req.RentalID, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayment(p))
}

// @Summary Settle in cash
// @Description Moderators record a cash payment and close the rental
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param rentalId path string true "Rental ID"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments/cash/{rentalId} [post]
func (h *PaymentHandler) SettleCash(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rentalID, ok := pathUUID(c, "rentalId")
	if !ok {
		return
	}

	p, err := h.cmds.SettleCash(c.Request.Context(), rentalID, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayment(p))
}

// @Summary List payments
// @Description Own payments, or every payment for moderators, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 20)"
// @Success 200 {object} resdto.ListResponse[resdto.PaymentResponse]
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	params, ok := pageParams(c, pagination.Payments)
	if !ok {
		return
	}

	page, err := h.q.List(c.Request.Context(), actor, params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPaymentPage(page)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Payment status
// @Description Checkout success redirect target; confirms the session with the gateway
// @Tags payments
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payment-status [get]
func (h *PaymentHandler) PaymentStatus(c *gin.Context) {
	var query reqdto.PaymentStatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.ConfirmSession(c.Request.Context(), query.SessionID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(query.SessionID, result))
}
