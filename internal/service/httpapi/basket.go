package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type basketLineBody struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Size      int   `json:"size"`
	Quantity  int   `json:"quantity" validate:"gt=0,lte=100"`
}

type basketResponse struct {
	SessionID string           `json:"session_id"`
	Lines     []basketLineBody `json:"lines"`
	Units     int              `json:"units"`
}

func sessionParam(c *gin.Context) (string, bool) {
	session := strings.TrimSpace(c.Param("session_id"))
	if session == "" || len(session) > 128 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: "invalid_session_id", Message: "session_id must be 1..128 characters"})
		return "", false
	}
	return session, true
}

func (h *Handler) getBasket(c *gin.Context) {
	session, ok := sessionParam(c)
	if !ok {
		return
	}
	h.writeBasket(c, session)
}

// putBasketLine добавляет количество к позиции. Товар и размер проверяются по каталогу,
// остаток не резервируется.
func (h *Handler) putBasketLine(c *gin.Context) {
	session, ok := sessionParam(c)
	if !ok {
		return
	}
	var body basketLineBody
	if !h.bind(c, &body) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.stock.CheckStock(ctx, body.ProductID, body.Size); err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.baskets.Add(ctx, session, domain.BasketLine{
		ProductID: body.ProductID,
		Size:      body.Size,
		Quantity:  body.Quantity,
	}); err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.writeBasket(c, session)
}

func (h *Handler) deleteBasketLine(c *gin.Context) {
	session, ok := sessionParam(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	size, ok := sizeParam(c)
	if !ok {
		return
	}

	if err := h.baskets.Remove(c.Request.Context(), session, productID, size); err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.writeBasket(c, session)
}

func (h *Handler) clearBasket(c *gin.Context) {
	session, ok := sessionParam(c)
	if !ok {
		return
	}
	if err := h.baskets.Clear(c.Request.Context(), session); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeBasket(c *gin.Context, session string) {
	lines, err := h.baskets.Get(c.Request.Context(), session)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	resp := basketResponse{SessionID: session, Lines: make([]basketLineBody, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, basketLineBody{ProductID: l.ProductID, Size: l.Size, Quantity: l.Quantity})
		resp.Units += l.Quantity
	}
	c.JSON(http.StatusOK, resp)
}
