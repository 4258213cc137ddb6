package handler

import (
	"log/slog"
	"net/http"

	"wayfarer/internal/delivery/http/response"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublicLinkHandlerParams holds dependencies for PublicLinkHandler, injected by Fx.
type PublicLinkHandlerParams struct {
	fx.In

	PublicLinkUC usecase.PublicLinkUsecase
	Logger       *slog.Logger
}

// PublicLinkHandler holds dependencies for public link handlers
type PublicLinkHandler struct {
	publicLinkUC usecase.PublicLinkUsecase
	logger       *slog.Logger
}

// NewPublicLinkHandler is the constructor for PublicLinkHandler
func NewPublicLinkHandler(params PublicLinkHandlerParams) *PublicLinkHandler {
	return &PublicLinkHandler{
		publicLinkUC: params.PublicLinkUC,
		logger:       params.Logger,
	}
}

// CreatePublicLink handles creating (or returning) the journey's active link
func (h *PublicLinkHandler) CreatePublicLink(c echo.Context) error {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid journey ID")
	}

	link, err := h.publicLinkUC.CreatePublicLink(c.Request().Context(), journeyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"token":      link.Token,
		"public_url": link.PublicURL(),
	}, "Public link created successfully")
}

// RevokePublicLink handles withdrawing the journey's active link
func (h *PublicLinkHandler) RevokePublicLink(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid journey ID")
	}

	if err := h.publicLinkUC.RevokePublicLink(c.Request().Context(), journeyID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Public link revoked successfully"}, "Public link revoked successfully")
}

// PublicLinkQR renders the journey's active link URL as a PNG QR code
func (h *PublicLinkHandler) PublicLinkQR(c echo.Context) error {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid journey ID")
	}

	png, err := h.publicLinkUC.PublicLinkQR(c.Request().Context(), journeyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConsumePublicLink resolves a token to its journey and spends the link.
// This endpoint is unauthenticated.
func (h *PublicLinkHandler) ConsumePublicLink(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_TOKEN", "Token is required")
	}

	journey, err := h.publicLinkUC.ConsumePublicLink(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, journey, "Journey retrieved successfully")
}
