package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// registerStatus GET /status
func (a *API) registerStatus() {
	type statusModel struct {
		Uptime string `json:"uptime"`
		Guilds int    `json:"guilds"`
		Pins   int64  `json:"pins"`
	}

	a.router.GET("/status", func(c *gin.Context) {
		pins, err := a.pins.Count(a.ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, &statusModel{
			Uptime: a.bot.Uptime().Round(time.Second).String(),
			Guilds: a.bot.GuildCount(),
			Pins:   pins,
		})
	})
}
