package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vokaflow/faqbot/internal/common"
	"github.com/vokaflow/faqbot/internal/conversation"
	"github.com/vokaflow/faqbot/internal/faq"
)

type Handler struct {
	Ctrl *conversation.Controller
	FAQs *faq.Service
}

func NewHandler(ctrl *conversation.Controller, faqs *faq.Service) *Handler {
	return &Handler{Ctrl: ctrl, FAQs: faqs}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}
