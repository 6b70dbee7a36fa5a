package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/go-to-sky/onelife/pkg/translator"
)

// LanguageMiddleware stores the request language based on the
// Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Use the primary subtag only ("zh-CN" counts as zh), fallback
		// to en.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		if idx := strings.IndexAny(lang, "-,;"); idx > 0 {
			lang = lang[:idx]
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
