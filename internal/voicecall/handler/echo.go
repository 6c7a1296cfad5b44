package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EchoRequest accepts either field name; diagnostic callers differ.
type EchoRequest struct {
	Text       string `json:"text"`
	Transcript string `json:"transcript"`
}

// HandleEcho confirms reachability by echoing the received text back.
func (h Handler) HandleEcho(c *gin.Context) {
	var req EchoRequest
	// A malformed body still gets an echo of the empty string; this
	// endpoint exists only to verify the round trip.
	_ = c.ShouldBindJSON(&req)

	text := req.Text
	if text == "" {
		text = req.Transcript
	}

	c.JSON(http.StatusOK, gin.H{
		"response": fmt.Sprintf("A szerver válasza rendben működik, kaptam: \"%s\".", text),
	})
}

// HandleEchoLiveness answers GET probes with a fixed marker string.
func (h Handler) HandleEchoLiveness(c *gin.Context) {
	c.String(http.StatusOK, "Vapi teszt endpoint működik ✅")
}
