package controllers

import (
	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/resp"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/services"
	"github.com/AGTechathon/Agriminds/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Auth *services.AuthService
}

func NewAdminController(auth *services.AuthService) *AdminController {
	return &AdminController{Auth: auth}
}

// GET /api/admin/users?role=farmer&page=1&limit=20
func (ac *AdminController) ListUsers(c *gin.Context) {
	page := repository.PageFromNumber(utils.QueryInt(c, "page", 1), utils.QueryInt(c, "limit", 0))
	users, total, err := ac.Auth.ListUsers(entity.Role(c.Query("role")), page)
	if err != nil {
		resp.Error(c, err)
		return
	}
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, toUser(&users[i]))
	}
	resp.OK(c, Paged[UserResponse]{Items: items, Total: total, Limit: page.Limit, Offset: page.Offset})
}
