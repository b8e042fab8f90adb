package controllers

import (
	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/resp"
	"github.com/AGTechathon/Agriminds/services"
	"github.com/AGTechathon/Agriminds/utils"

	"github.com/gin-gonic/gin"
)

type InspectionRequest struct {
	Grade string `json:"grade" binding:"required,grade"`
	Notes string `json:"notes" binding:"max=2000"`
}

type AgentController struct{ Inspections *services.InspectionService }

func NewAgentController(svc *services.InspectionService) *AgentController {
	return &AgentController{Inspections: svc}
}

// POST /api/agents/quality/crops/:id/inspections
func (ac *AgentController) RecordInspection(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid crop id")
		return
	}
	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	in, err := ac.Inspections.Record(utils.CurrentUserID(c), id, entity.InspectionGrade(req.Grade), req.Notes)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toInspection(in))
}

// GET /api/agents/quality/crops/:id/inspections
func (ac *AgentController) ListInspections(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid crop id")
		return
	}
	list, err := ac.Inspections.List(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]InspectionResponse, 0, len(list))
	for i := range list {
		out = append(out, toInspection(&list[i]))
	}
	resp.OK(c, out)
}
