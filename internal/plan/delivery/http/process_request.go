package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processAdjustReq(c *gin.Context) (adjustReq, error) {
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	req.TaskID = c.Param("task_id")
	return req, nil
}

func (h *handler) processSetSuggestionReq(c *gin.Context) (setSuggestionReq, error) {
	var req setSuggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return req, errInvalidIndex
	}
	req.SessionID = c.Param("id")
	req.Index = idx
	return req, nil
}

func (h *handler) processListPlansReq(c *gin.Context) (listPlansReq, error) {
	var req listPlansReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	err := c.ShouldBindJSON(&req)
	return req, err
}
