package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ranking/internal/application"
	"ranking/internal/domain/model"
)

// Handler 负责处理排行榜的只读 HTTP 请求。
type Handler struct {
	rankService application.RankService
}

// NewHandler 创建一个新的 Handler。
func NewHandler(rankService application.RankService) *Handler {
	return &Handler{rankService: rankService}
}

// RegisterRoutes 注册路由。
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// 游戏页面直接请求 ./ranking.json
	router.GET("/ranking.json", h.getRankingFile)

	api := router.Group("/api/v1")
	{
		api.GET("/ranking/top/:n", h.getTopN)
	}
}

type rankedEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	Date  string `json:"date"`
}

func (h *Handler) getRankingFile(c *gin.Context) {
	ranking, err := h.rankService.GetRanking()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := model.EncodeRanking(&buf, ranking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

func (h *Handler) getTopN(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
		return
	}

	top, total, err := h.rankService.GetTopN(n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entries := make([]rankedEntry, 0, len(top))
	for i, e := range top {
		entries = append(entries, rankedEntry{
			Rank:  i + 1,
			Name:  e.Name,
			Score: e.Score,
			Level: e.Level,
			Date:  e.Date,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"entries": entries,
	})
}
