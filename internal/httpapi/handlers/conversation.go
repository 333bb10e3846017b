package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vokaflow/faqbot/internal/common"
	"github.com/vokaflow/faqbot/internal/conversation"
)

func (h *Handler) GetMessages(c *gin.Context) {
	common.OK(c, gin.H{
		"messages":   h.Ctrl.Messages(),
		"is_loading": h.Ctrl.IsLoading(),
	})
}

type sendMessageReq struct {
	Text string `json:"text"`
}

// SendMessage accepts the utterance and returns immediately; the reply is
// resolved in the background and lands in the message list as the typing
// placeholder resolves. Empty text is accepted and ignored, matching the
// send contract.
func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	if err := h.Ctrl.Send(c.Request.Context(), req.Text); err != nil {
		if errors.Is(err, conversation.ErrReplyPending) {
			common.Fail(c, http.StatusConflict, 40901, "a reply is still pending")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to send message")
		return
	}

	common.OK(c, gin.H{
		"messages":   h.Ctrl.Messages(),
		"is_loading": h.Ctrl.IsLoading(),
	})
}

func (h *Handler) ClearConversation(c *gin.Context) {
	if err := h.Ctrl.Clear(c.Request.Context()); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to clear conversation")
		return
	}
	common.OK(c, gin.H{"messages": h.Ctrl.Messages()})
}

type selectCategoryReq struct {
	Category string `json:"category"` // empty clears the selection
}

func (h *Handler) SelectCategory(c *gin.Context) {
	var req selectCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	h.Ctrl.SelectCategory(req.Category)

	if req.Category == "" {
		common.OK(c, gin.H{"category": "", "faqs": nil})
		return
	}
	entries, err := h.FAQs.GetByCategory(c.Request.Context(), req.Category)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50003, "failed to load category")
		return
	}
	common.OK(c, gin.H{"category": req.Category, "faqs": entries})
}

func (h *Handler) GetSuggestions(c *gin.Context) {
	common.OK(c, gin.H{"suggested_questions": h.Ctrl.SuggestedQuestions()})
}

func (h *Handler) GetCategories(c *gin.Context) {
	common.OK(c, gin.H{"categories": h.Ctrl.Categories()})
}
