package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxCount is the upper bound accepted by ParseCount.
const MaxCount = 100

// ParseCount safely parses and validates the count query parameter.
// It defaults to 1 and cannot exceed MaxCount.
func ParseCount(c *gin.Context) (int, error) {
	countStr := c.DefaultQuery("count", "1")
	count, err := strconv.Atoi(countStr)
	if err != nil || count < 1 || count > MaxCount {
		return 0, fmt.Errorf("invalid count parameter: must be between 1 and %d", MaxCount)
	}

	return count, nil
}
