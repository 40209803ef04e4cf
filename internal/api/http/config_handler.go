package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yonkadingo/internal/game"
)

type ConfigHandler struct {
	rules game.Rules
}

func NewConfigHandler(rules game.Rules) *ConfigHandler {
	return &ConfigHandler{rules: rules}
}

// GetRulesHandler returns the rules new matches are created with
// @Summary Get match rules
// @Description Board size, starting supplies and damage values used for new rooms
// @Tags Config
// @Produce json
// @Success 200 {object} game.Rules
// @Router /config/rules [get]
func (h *ConfigHandler) GetRulesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.rules)
}
