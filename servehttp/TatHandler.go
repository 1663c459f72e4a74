package servehttp

import (
	"net/http"
	"turnaround/common"
	"turnaround/domain"
	"turnaround/domain/state"
	"turnaround/domain/tat"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type TransitionBody struct {
	Status     string `json:"status"     validate:"required"`
	ChangeTime string `json:"changeTime" validate:"required"`
}

// TatComputation carries a complete transition history to compute on.
type TatComputation struct {
	OrderID     string           `json:"orderId"     validate:"required"`
	Transitions []TransitionBody `json:"transitions" validate:"dive"`
}

type TeamQuery struct {
	Team string `form:"team"`
}

func (b *TransitionBody) toStatusTransition() (domain.StatusTransition, error) {
	status, err := state.Parse(b.Status)
	if err != nil {
		return domain.StatusTransition{}, err
	}
	changeTime, err := domain.ParseLocalDateTime(b.ChangeTime)
	if err != nil {
		return domain.StatusTransition{}, err
	}
	return domain.StatusTransition{Status: status, ChangeTime: changeTime}, nil
}

func RegisterTatHandler(r *gin.Engine, aggregator *tat.Aggregator, middleWares ...gin.HandlerFunc) {
	handler := &tatHandler{aggregator: aggregator, validator: validator.New()}

	r.GET("/v1/teams", handler.handleQueryTeams)
	g := r.Group("/v1/tats", middleWares...)
	g.POST("", handler.handleCompute)
}

type tatHandler struct {
	aggregator *tat.Aggregator
	validator  *validator.Validate
}

func (h *tatHandler) handleQueryTeams(c *gin.Context) {
	registry := h.aggregator.Teams()
	teams := make([]TeamView, 0, registry.Len())
	for _, name := range registry.Names() {
		team, err := registry.Lookup(name)
		if err != nil {
			panic(err)
		}
		teams = append(teams, NewTeamView(team))
	}
	c.JSON(http.StatusOK, teams)
}

func (h *tatHandler) handleCompute(c *gin.Context) {
	query := TeamQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}

	computation := TatComputation{}
	if err := c.ShouldBindBodyWith(&computation, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	if err := h.validator.Struct(computation); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}

	o := &domain.Order{OrderID: computation.OrderID}
	for i := range computation.Transitions {
		t, err := computation.Transitions[i].toStatusTransition()
		if err != nil {
			panic(&common.ErrBadParam{Cause: err})
		}
		o.Transitions = append(o.Transitions, t)
	}

	if query.Team != "" {
		r, err := h.aggregator.TeamReport(o, query.Team)
		if err != nil {
			panic(err)
		}
		c.JSON(http.StatusOK, NewTeamReportView(&r))
		return
	}
	r := h.aggregator.Report(o)
	c.JSON(http.StatusOK, NewReportView(&r))
}
