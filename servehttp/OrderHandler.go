package servehttp

import (
	"net/http"
	"turnaround/common"
	"turnaround/domain/order"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterOrderHandler(r *gin.Engine, m order.OrderManagerTraits, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/orders", middleWares...)

	handler := &orderHandler{orderManager: m, validator: validator.New()}

	g.GET(":orderId/tats", handler.handleQueryTats)
	g.POST(":orderId/transitions", handler.handleRecordTransition)
}

type orderHandler struct {
	orderManager order.OrderManagerTraits
	validator    *validator.Validate
}

func (h *orderHandler) handleQueryTats(c *gin.Context) {
	query := TeamQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}

	orderID := c.Param("orderId")
	if query.Team != "" {
		r, err := h.orderManager.QueryTeamReport(c.Request.Context(), orderID, query.Team)
		if err != nil {
			panic(err)
		}
		c.JSON(http.StatusOK, NewTeamReportView(r))
		return
	}

	r, err := h.orderManager.QueryReport(c.Request.Context(), orderID)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, NewReportView(r))
}

func (h *orderHandler) handleRecordTransition(c *gin.Context) {
	body := TransitionBody{}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	if err := h.validator.Struct(body); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	t, err := body.toStatusTransition()
	if err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}

	record, err := h.orderManager.RecordTransition(c.Request.Context(), c.Param("orderId"),
		&order.TransitionCreation{Status: t.Status, ChangeTime: t.ChangeTime})
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, NewTransitionRecordView(record))
}
