package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	recorder
	rewards RewardServicer
	clock   func() time.Time
}

func NewRewardsHandler(rewards RewardServicer, rec OperationRecorder, clock func() time.Time) *RewardsHandler {
	return &RewardsHandler{recorder: recorder{rec: rec}, rewards: rewards, clock: clock}
}

type ClaimStatus struct {
	Available   bool      `json:"available"`
	NextClaimAt time.Time `json:"next_claim_at"`
}

type ClaimResponse struct {
	Kind        domain.ClaimKind `json:"kind"`
	Amount      int64            `json:"amount"`
	Balance     int64            `json:"balance"`
	NextClaimAt time.Time        `json:"next_claim_at"`
}

// Status GET RouteGroup + RewardsRoute. Доступность обеих наград.
func (h *RewardsHandler) Status(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	now := h.clock()

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res := make(map[domain.ClaimKind]ClaimStatus, 2)
	for _, kind := range []domain.ClaimKind{domain.ClaimDaily, domain.ClaimBonus} {
		ok, next, err := h.rewards.CanClaim(reqCtx, currentUserID, kind, now)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		res[kind] = ClaimStatus{Available: ok, NextClaimAt: next}
	}
	c.JSON(http.StatusOK, res)
}

// Daily POST RouteGroup + DailyRewardRoute.
func (h *RewardsHandler) Daily(c *gin.Context) {
	h.claim(c, "claim_daily", h.rewards.ClaimDaily)
}

// Bonus POST RouteGroup + BonusRewardRoute.
func (h *RewardsHandler) Bonus(c *gin.Context) {
	h.claim(c, "claim_bonus", h.rewards.ClaimBonus)
}

func (h *RewardsHandler) claim(
	c *gin.Context,
	operation string,
	fn func(context.Context, int64, time.Time) (*service.ClaimResult, error),
) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := fn(reqCtx, currentUserID, h.clock())
	h.record(operation, err)
	if err != nil {
		var cooldownErr *domain.ClaimCooldownError
		if errors.As(err, &cooldownErr) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error":         domain.ErrAlreadyClaimed.Error(),
				"next_claim_at": cooldownErr.NextClaimAt,
			})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClaimResponse{
		Kind:        res.Kind,
		Amount:      res.Amount,
		Balance:     res.Balance,
		NextClaimAt: res.NextClaimAt,
	})
}
