package controller

import (
	"errors"
	"io"
	"net/http"
	"rune-backend/internal/dto"
	"rune-backend/internal/model"
	"rune-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type EventController struct {
	eventService service.EventService
}

func NewEventController(eventService service.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

func RegisterEventRoutes(router *gin.Engine, controller *EventController) {
	v1 := router.Group("/api/v1/events")
	{
		v1.GET("", controller.GetEvents)
		v1.POST("", controller.PostEvents)
		v1.GET("/summary", controller.GetSummary)
	}
	router.GET("/healthz", controller.Health)
}

// GetEvents godoc
// @Summary      Classify a log file
// @Description  Reads the given log file (or the first readable fallback sample) and returns every line containing a severity keyword. Falls back to a two-event placeholder dataset when no file is readable.
// @Tags         events
// @Produce      json
// @Param        path  query     string  false  "Path of the log file to classify"
// @Success      200   {object}  model.LogDataset "Classified events"
// @Router       /api/v1/events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	dataset := c.eventService.GetEvents(ctx.Request.Context(), ctx.Query("path"))
	ctx.JSON(http.StatusOK, dataset)
}

// PostEvents godoc
// @Summary      Classify a log file
// @Description  Same as GET /api/v1/events with the path supplied in a JSON body. An empty body selects the fallback samples.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      dto.EventRequest  false  "File to classify"
// @Success      200      {object}  model.LogDataset  "Classified events"
// @Failure      400      {object}  model.Response    "Malformed request body"
// @Router       /api/v1/events [post]
func (c *EventController) PostEvents(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Ctx(ctx.Request.Context()).Warn().Err(err).Msg("Invalid events request body")
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body. Expected {\"file_path\": \"...\"}.", nil))
		return
	}

	dataset := c.eventService.GetEvents(ctx.Request.Context(), req.FilePath)
	ctx.JSON(http.StatusOK, dataset)
}

// GetSummary godoc
// @Summary      Summarize classified events
// @Description  Returns dashboard aggregates for the classified events: counts per level, error count and event activity buckets.
// @Tags         events
// @Produce      json
// @Param        path  query     string  false  "Path of the log file to classify"
// @Success      200   {object}  dto.EventSummaryResponse "Event summary"
// @Router       /api/v1/events/summary [get]
func (c *EventController) GetSummary(ctx *gin.Context) {
	summary := c.eventService.GetSummary(ctx.Request.Context(), ctx.Query("path"))
	ctx.JSON(http.StatusOK, summary)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /healthz [get]
func (c *EventController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
