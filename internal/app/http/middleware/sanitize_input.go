package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

const maxBodyBytes = 64 << 10

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeJSONBody strips markup from every string in a JSON object body.
// An empty body is accepted and replaced by {}.
func SanitizeJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(buf) > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Body too large"})
			return
		}

		body := map[string]interface{}{}
		if len(bytes.TrimSpace(buf)) > 0 {
			if err := json.Unmarshal(buf, &body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
				return
			}
		}
		for k, v := range body {
			body[k] = sanitizeValue(v)
		}

		clean, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewReader(clean))
		c.Request.ContentLength = int64(len(clean))

		c.Next()
	}
}

func sanitizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return strictPolicy.Sanitize(t)
	case []interface{}:
		for i := range t {
			t[i] = sanitizeValue(t[i])
		}
		return t
	case map[string]interface{}:
		for k := range t {
			t[k] = sanitizeValue(t[k])
		}
		return t
	}
	return v
}
