package middlewares

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/pkg/resp"
	"github.com/mwilkosz/Meta-Back-End-Developer/utils"
)

const forbiddenMessage = "You don't have right permission to perform this action."

// RequireGroups permits the request when the caller belongs to at least one
// of the named groups. Membership is read from the DB on every request so
// roster changes take effect immediately.
func RequireGroups(db *gorm.DB, names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := utils.CurrentUserID(c)
		if uid == 0 {
			resp.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		var count int64
		err := db.Table("user_groups").
			Joins("JOIN groups ON groups.id = user_groups.group_id").
			Where("user_groups.user_id = ? AND groups.name IN ?", uid, names).
			Count(&count).Error
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}
		if count == 0 {
			resp.Forbidden(c, forbiddenMessage)
			c.Abort()
			return
		}

		c.Next()
	}
}
