package api

import (
	"net/http"
	"strings"

	reqdto "github.com/nataliadudina/bike-rental/internal/handler/dto/request"
	resdto "github.com/nataliadudina/bike-rental/internal/handler/dto/response"
	"github.com/nataliadudina/bike-rental/internal/handler/httperr"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	maxIdempotencyKeyLen = 255
)

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Rent a bicycle
// @Description Starts a rental. Repeating the request with the same Idempotency-Key returns the original rental.
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param bikeId path string true "Bicycle ID"
// @Param Idempotency-Key header string false "Replay protection key"
// @Success 201 {object} resdto.RentalResponse
// @Success 200 {object} resdto.RentalResponse "Replayed request"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rent/{bikeId} [post]
func (h *RentalHandler) Reserve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bikeID, ok := pathUUID(c, "bikeId")
	if !ok {
		return
	}
	key := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if len(key) > maxIdempotencyKeyLen {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeyTooLong, "Idempotency-Key must be at most 255 characters", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), bikeID, actor, key)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	c.Header("Location", "/api/rentals/"+result.Rental.ID().String())
	c.JSON(status, resdto.FromRental(result.Rental))
}

// @Summary Return a bicycle
// @Description Ends the caller's rental and computes its cost
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param rentalId path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/returns/{rentalId} [patch]
func (h *RentalHandler) Return(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rentalID, ok := pathUUID(c, "rentalId")
	if !ok {
		return
	}

	r, err := h.cmds.ReturnBike(c.Request.Context(), rentalID, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRental(r))
}

// @Summary List all rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 10)"
// @Success 200 {object} resdto.ListResponse[resdto.RentalResponse]
// @Failure 403 {object} httperr.Response
// @Router /api/rentals [get]
func (h *RentalHandler) ListAll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	params, ok := pageParams(c, pagination.Rentals)
	if !ok {
		return
	}

	page, err := h.q.ListAll(c.Request.Context(), actor, params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithPage(c, page)
}

// @Summary Rental history
// @Description The caller's own rentals, newest first
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 10)"
// @Success 200 {object} resdto.ListResponse[resdto.RentalResponse]
// @Router /api/rentals/history [get]
func (h *RentalHandler) History(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	params, ok := pageParams(c, pagination.Rentals)
	if !ok {
		return
	}

	page, err := h.q.ListHistory(c.Request.Context(), actor, params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithPage(c, page)
}

// @Summary Get rental
// @Description Visible to the renter and to moderators
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRentalView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *RentalHandler) respondWithPage(c *gin.Context, page *queries.Page[queries.RentalView]) {
	res, err := resdto.FromRentalPage(page)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func pageParams(c *gin.Context, policy pagination.Policy) (pagination.Params, bool) {
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return pagination.Params{}, false
	}
	return policy.Parse(query.Page, query.PageSize), true
}
