package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fransfilastap/draw-lot-app/internal/app"
	"github.com/fransfilastap/draw-lot-app/internal/domain"
)

type Handler struct {
	engine *app.Engine
}

func NewHandler(engine *app.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/names", h.GetNames)
	e.PUT("/v1/names", h.PutNames)
	e.GET("/v1/prizes", h.GetPrizes)
	e.PUT("/v1/prizes", h.PutPrizes)
	e.GET("/v1/prizes/active", h.ActivePrize)
	e.POST("/v1/spin", h.Spin)
	e.POST("/v1/spin/stop", h.StopSpin)
	e.GET("/v1/winners", h.Winners)
	e.GET("/v1/state", h.State)
	e.PATCH("/v1/settings", h.PatchSettings)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetNames(c echo.Context) error {
	return c.JSON(http.StatusOK, NamesResponse{Names: h.engine.Names()})
}

func (h *Handler) PutNames(c echo.Context) error {
	var req NamesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	h.engine.SetNames(req.Names)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetPrizes(c echo.Context) error {
	return c.JSON(http.StatusOK, PrizesResponse{
		Prizes:      h.engine.Prizes(),
		ActivePrize: h.engine.ActivePrize(),
	})
}

func (h *Handler) PutPrizes(c echo.Context) error {
	var req PrizesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	h.engine.SetPrizes(req.Prizes)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ActivePrize(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"active_prize": h.engine.ActivePrize()})
}

// Spin runs a draw to completion. The response is sent once the reel
// has settled, naturally or via /v1/spin/stop.
func (h *Handler) Spin(c echo.Context) error {
	res, err := h.engine.Spin(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusOK, SpinResponse{
		SpinID:    res.ID,
		Winner:    res.Winner,
		Prize:     res.Prize,
		Forced:    res.Forced,
		RequestID: requestID,
	})
}

func (h *Handler) StopSpin(c echo.Context) error {
	return c.JSON(http.StatusAccepted, StopResponse{Stopped: h.engine.ForceStop()})
}

func (h *Handler) Winners(c echo.Context) error {
	records := h.engine.Winners()
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String()
	}
	return c.JSON(http.StatusOK, WinnersResponse{Winners: out})
}

func (h *Handler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, StateResponse{
		State:        string(h.engine.State()),
		NameCount:    len(h.engine.Names()),
		PrizeCount:   len(h.engine.Prizes()),
		WinnerCount:  len(h.engine.Winners()),
		ActivePrize:  h.engine.ActivePrize(),
		RemoveWinner: h.engine.RemoveWinner(),
	})
}

func (h *Handler) PatchSettings(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.RemoveWinner == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "remove_winner is required"})
	}
	h.engine.SetRemoveWinner(*req.RemoveWinner)
	return c.NoContent(http.StatusNoContent)
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrEmptyNameList):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSpinInProgress):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
