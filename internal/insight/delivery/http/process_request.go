package http

import "github.com/gin-gonic/gin"

func (h *handler) processSummarizeReq(c *gin.Context) (summarizeReq, error) {
	var req summarizeReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// An empty body is a valid coaching request.
func (h *handler) processAdviseReq(c *gin.Context) (adviseReq, error) {
	var req adviseReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	err := c.ShouldBindJSON(&req)
	return req, err
}
