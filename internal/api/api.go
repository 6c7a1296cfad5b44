package api

import (
	"net/http"

	bookingHandler "reception-server/internal/booking/handler"
	emailHandler "reception-server/internal/email/handler"
	relayHandler "reception-server/internal/relay/handler"
	voiceCallHandler "reception-server/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	voiceCallHandler voiceCallHandler.Handler
	bookingHandler   bookingHandler.Handler
	emailHandler     emailHandler.Handler
	relayHandler     relayHandler.Handler
}

func New(
	router *gin.RouterGroup,
	voiceCallHandler voiceCallHandler.Handler,
	bookingHandler bookingHandler.Handler,
	emailHandler emailHandler.Handler,
	relayHandler relayHandler.Handler,
) API {
	return API{
		router:           router,
		voiceCallHandler: voiceCallHandler,
		bookingHandler:   bookingHandler,
		emailHandler:     emailHandler,
		relayHandler:     relayHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		// Twilio correlates the two requests only through this path
		apiGroup.GET("/twilio", a.voiceCallHandler.HandleInboundCall)
		apiGroup.POST("/twilio", a.voiceCallHandler.HandleSpeechResult)

		apiGroup.GET("/booking", a.bookingHandler.HandleLiveness)
		apiGroup.POST("/booking", a.bookingHandler.HandleCreateBooking)

		apiGroup.POST("/email", a.emailHandler.HandleSendEmail)

		apiGroup.POST("/send-message", a.relayHandler.HandleSendMessage)

		apiGroup.GET("/vapi", a.voiceCallHandler.HandleEchoLiveness)
		apiGroup.POST("/vapi", a.voiceCallHandler.HandleEcho)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
