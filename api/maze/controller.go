package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mazeforge/world-api/service/i"
)

// Controller handles maze generation requests.
type Controller struct {
	generator i.MazeGenerator
	defaults  Defaults
}

// NewController initializes a maze Controller.
func NewController(generator i.MazeGenerator, defaults Defaults) (*Controller, error) {
	if generator == nil {
		return nil, errors.New("maze generator is required")
	}
	return &Controller{
		generator: generator,
		defaults:  defaults,
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", c.generate)
		mazes.GET("/:ID", c.sceneByID)
		mazes.DELETE("/:ID", c.drop)
	}
}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {}

// generate handles maze generation requests.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := i.GenerateRequest{
		Width:      c.defaults.Width,
		Height:     c.defaults.Height,
		CellSize:   c.defaults.CellSize,
		HazardProb: c.defaults.HazardProb,
		PickupProb: c.defaults.PickupProb,
		Seed:       request.Seed,
	}
	if request.Width != nil {
		req.Width = *request.Width
	}
	if request.Height != nil {
		req.Height = *request.Height
	}
	if request.CellSize != nil {
		req.CellSize = *request.CellSize
	}
	if request.HazardProb != nil {
		req.HazardProb = *request.HazardProb
	}
	if request.PickupProb != nil {
		req.PickupProb = *request.PickupProb
	}

	scene, err := c.generator.Generate(ctx, req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, scene)
}

// sceneByID retrieves a previously generated scene.
func (c *Controller) sceneByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid scene id"})
		return
	}

	scene, err := c.generator.ByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, scene)
}

// drop forgets a previously generated scene.
func (c *Controller) drop(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid scene id"})
		return
	}

	if err := c.generator.Drop(ctx, id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}
