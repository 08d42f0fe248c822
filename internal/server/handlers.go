package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/travelpal/travelpal/internal/auth"
	"github.com/travelpal/travelpal/internal/concierge"
	"github.com/travelpal/travelpal/internal/llm"
	"github.com/travelpal/travelpal/internal/models"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req auth.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}

	if err := s.auth.Register(c.Request().Context(), req); err != nil {
		if errors.Is(err, auth.ErrMissingFields) || auth.IsConflict(err) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		s.logger.Error("registration failed", "error", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "an error occurred while registering the user"})
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}

	result, err := s.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMissingCredentials) || errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		s.logger.Error("login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error"})
	}

	return c.JSON(http.StatusOK, result)
}

type chatRequest struct {
	Message     string             `json:"message"`
	History     []models.Turn      `json:"history"`
	Preferences models.Preferences `json:"preferences"`
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	result, err := s.concierge.Converse(c.Request().Context(), req.Message, req.History, req.Preferences)
	if err != nil {
		return s.chatError(c, err)
	}

	if result.Locations == nil {
		result.Locations = []models.Location{}
	}
	return c.JSON(http.StatusOK, result)
}

// chatError maps orchestrator failures to user-safe responses. Upstream
// detail is only echoed when the development-mode flag is set.
func (s *Server) chatError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := llm.ErrUnavailable.Error()

	switch {
	case errors.Is(err, concierge.ErrEmptyMessage):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: concierge.ErrEmptyMessage.Error()})
	case errors.Is(err, llm.ErrContentPolicy):
		status = http.StatusBadRequest
		message = llm.ErrContentPolicy.Error()
	case errors.Is(err, llm.ErrAPIKey):
		message = llm.ErrAPIKey.Error()
	case errors.Is(err, llm.ErrQuota):
		message = llm.ErrQuota.Error()
	}

	s.logger.Error("chat turn failed", "error", err)

	resp := errorResponse{Error: message}
	if s.devMode {
		resp.Details = err.Error()
	}
	return c.JSON(status, resp)
}

func (s *Server) handleHotels(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "valid lat and lng query parameters are required"})
	}

	hotels, err := s.hotels.NearbyHotels(c.Request().Context(), lat, lng, s.hotelRadius)
	if err != nil {
		s.logger.Error("hotel lookup failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "hotel lookup failed"})
	}

	if hotels == nil {
		hotels = []models.Booking{}
	}
	return c.JSON(http.StatusOK, hotels)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.Snapshot())
}
