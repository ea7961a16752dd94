package api

import (
	"net/http"

	reqdto "github.com/nataliadudina/bike-rental/internal/handler/dto/request"
	resdto "github.com/nataliadudina/bike-rental/internal/handler/dto/response"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BicycleHandler struct {
	cmds commands.BicycleCommands
	q    queries.BicycleQueries
}

func NewBicycleHandler(cmds commands.BicycleCommands, q queries.BicycleQueries) *BicycleHandler {
	return &BicycleHandler{cmds: cmds, q: q}
}

// @Summary List available bicycles
// @Description Bicycles that can be rented right now, ordered by brand
// @Tags bicycles
// @Produce json
// @Param brand query string false "Exact brand"
// @Param brand_contains query string false "Case-insensitive brand fragment"
// @Param condition query string false "excellent, good or satisfactory"
// @Param type query string false "adult, junior or kids"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 10)"
// @Success 200 {object} resdto.ListResponse[resdto.BicycleResponse]
// @Failure 400 {object} httperr.Response
// @Router /api/available-bikes [get]
func (h *BicycleHandler) ListAvailable(c *gin.Context) {
	var query reqdto.BicycleListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	params := pagination.Bicycles.Parse(query.Page, query.PageSize)
	page, err := h.q.ListAvailable(c.Request.Context(), query.ToFilter(), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBicyclePage(page)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get bicycle
// @Tags bicycles
// @Produce json
// @Param id path string true "Bicycle ID"
// @Success 200 {object} resdto.BicycleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bikes/{id} [get]
func (h *BicycleHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Add bicycle
// @Description Moderators add a bicycle to the catalog
// @Tags bicycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBicycleRequest true "Bicycle"
// @Success 201 {object} resdto.BicycleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/bikes [post]
func (h *BicycleHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	b, err := h.cmds.Create(c.Request.Context(), spec, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/bikes/"+b.ID().String())
	h.respondWithView(c, http.StatusCreated, b.ID())
}

// @Summary Update bicycle
// @Description Moderators change catalog attributes; absent fields keep their value
// @Tags bicycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bicycle ID"
// @Param request body reqdto.UpdateBicycleRequest true "Changed fields"
// @Success 200 {object} resdto.BicycleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bikes/{id} [patch]
func (h *BicycleHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	spec, err := req.ToSpec(existing)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, spec, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Delete bicycle
// @Description Moderators remove an idle bicycle; rented bicycles are refused
// @Tags bicycles
// @Security BearerAuth
// @Param id path string true "Bicycle ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bikes/{id} [delete]
func (h *BicycleHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BicycleHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBicycleView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(status, res)
}
