package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vokaflow/faqbot/internal/common"
	"github.com/vokaflow/faqbot/internal/conversation"
	"github.com/vokaflow/faqbot/internal/faq"
	"github.com/vokaflow/faqbot/internal/httpapi/handlers"
	"github.com/vokaflow/faqbot/internal/httpapi/middleware"
)

func NewRouter(ctrl *conversation.Controller, faqs *faq.Service) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.Use(middleware.RequestID())

	h := handlers.NewHandler(ctrl, faqs)

	r.GET("/ping", h.Ping)

	// conversation (one session per instance)
	r.GET("/conversation/messages", h.GetMessages)
	r.POST("/conversation/messages", h.SendMessage)
	r.DELETE("/conversation/messages", h.ClearConversation)
	r.POST("/conversation/category", h.SelectCategory)
	r.GET("/conversation/suggestions", h.GetSuggestions)
	r.GET("/conversation/categories", h.GetCategories)

	// FAQ collection
	r.GET("/faqs", h.ListFAQs)

	return r
}
