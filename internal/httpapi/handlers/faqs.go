package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vokaflow/faqbot/internal/common"
	"github.com/vokaflow/faqbot/internal/faq"
)

// ListFAQs serves the whole collection, optionally narrowed by one of
// ?q= (keyword search), ?category= (exact label) or ?popular=true.
func (h *Handler) ListFAQs(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		entries []faq.Entry
		err     error
	)
	switch {
	case c.Query("q") != "":
		entries, err = h.FAQs.Search(ctx, c.Query("q"))
	case c.Query("category") != "":
		entries, err = h.FAQs.GetByCategory(ctx, c.Query("category"))
	case isTrue(c.Query("popular")):
		entries, err = h.FAQs.GetPopular(ctx)
	default:
		entries, err = h.FAQs.GetAll(ctx)
	}
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50004, "failed to list faqs")
		return
	}

	if entries == nil {
		entries = []faq.Entry{}
	}
	common.OK(c, gin.H{"faqs": entries})
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
