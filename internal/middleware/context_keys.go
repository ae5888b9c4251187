package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// operatorIDKey is the key used to store the authenticated operator's id.
const operatorIDKey = contextKey("operatorID")

// WithOperatorID returns a copy of ctx carrying the authenticated operator id.
func WithOperatorID(ctx context.Context, operatorID int) context.Context {
	return context.WithValue(ctx, operatorIDKey, operatorID)
}

// GetOperatorIDFromContext retrieves the authenticated operator id.
// It returns the id and a boolean indicating if it was found.
func GetOperatorIDFromContext(c *gin.Context) (int, bool) {
	if v, exists := c.Get(string(operatorIDKey)); exists {
		id, ok := v.(int)
		return id, ok
	}
	id, ok := c.Request.Context().Value(operatorIDKey).(int)
	return id, ok
}
