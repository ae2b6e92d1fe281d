package assist

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pizzaassist/internal/catalog"
)

type Handler struct {
	planner *Service
	search  *catalog.Service
}

func NewHandler(planner *Service, search *catalog.Service) *Handler {
	return &Handler{planner: planner, search: search}
}

//
// --------------------------------------------------
// GET /api/assist/search?q=
// --------------------------------------------------
//

func (h *Handler) Search(c *gin.Context) {

	results, err := h.search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("assist: menu search failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu unavailable"})
		return
	}

	c.JSON(http.StatusOK, results)
}

//
// --------------------------------------------------
// POST /api/assist/cart
// --------------------------------------------------
//

func (h *Handler) Cart(c *gin.Context) {

	var req CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		req.UserID = "demo"
	}

	reqID := uuid.New().String()

	plan, err := h.planner.PlanCart(c.Request.Context(), req)
	if err != nil {
		var statusErr *StatusError
		switch {
		case errors.Is(err, ErrMenuUnavailable):
			log.Printf("assist[%s]: menu snapshot failed: %v", reqID, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu unavailable"})
		case errors.As(err, &statusErr):
			log.Printf("assist[%s]: LLM error %d: %s", reqID, statusErr.Code, truncate(statusErr.Body, 500))
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "LLM request failed",
				"status": statusErr.Code,
			})
		default:
			log.Printf("assist[%s]: exception calling LLM: %v", reqID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Exception calling LLM"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}
