package http

import "github.com/gin-gonic/gin"

func (h *handler) processRecordReq(c *gin.Context) (recordReq, error) {
	var req recordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
