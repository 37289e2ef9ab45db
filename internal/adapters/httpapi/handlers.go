package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.trai.ch/roam/internal/core/domain"
)

type connectionRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type mutationResponse struct {
	Status      domain.MutationOutcome `json:"status"`
	Message     string                 `json:"message"`
	Fingerprint string                 `json:"fingerprint"`
}

func (s *Server) getMap(c *gin.Context) {
	snap := s.snapshots.Read()
	fp := snap.Fingerprint()

	c.Header("ETag", ETag(fp))
	c.Header("Cache-Control", "no-cache")

	if MatchesETag(c.GetHeader("If-None-Match"), fp) {
		c.Status(http.StatusNotModified)
		s.metrics.ObserveMapRequest(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json", snap.Body())
	s.metrics.ObserveMapRequest(http.StatusOK)
}

func (s *Server) getPlayer(c *gin.Context) {
	var pos domain.PlayerPosition
	if s.player != nil {
		pos = s.player.Current()
	}
	c.Header("Cache-Control", "no-cache")
	c.JSON(http.StatusOK, gin.H{"id": pos.ID})
}

func (s *Server) getHealth(c *gin.Context) {
	snap := s.snapshots.Read()
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"fingerprint": snap.Fingerprint(),
		"connections": snap.Edges().Len(),
	})
}

func (s *Server) mutation(apply func(ctx context.Context, from, to string) (domain.MutationResult, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req connectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be {\"from\": string, \"to\": string}"})
			return
		}

		result, err := apply(c.Request.Context(), req.From, req.To)
		switch {
		case errors.Is(err, domain.ErrInvalidEdge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be distinct, non-empty location ids"})
			return
		case err != nil:
			s.logger.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage(err)})
			return
		}

		c.JSON(http.StatusOK, mutationResponse{
			Status:      result.Outcome,
			Message:     result.Outcome.Message(),
			Fingerprint: result.Fingerprint,
		})
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPersistFailed):
		return domain.ErrPersistFailed.Error()
	case errors.Is(err, domain.ErrSourceMalformed):
		return domain.ErrSourceMalformed.Error()
	case errors.Is(err, domain.ErrSourceUnreadable):
		return domain.ErrSourceUnreadable.Error()
	default:
		return "internal error"
	}
}
