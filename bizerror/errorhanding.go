package bizerror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"turnaround/common"
	"turnaround/domain"
	"turnaround/domain/state"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/gorm"
)

const CodeUnknownTeam = "tat.unknown_team"

var ErrTooManyRequests = errors.New("too many requests")

func ErrorHandling() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handle(c)
		c.Next()
	}
}

func handle(c *gin.Context) {
	if ret := recover(); ret != nil {
		err, ok := ret.(error)
		if !ok {
			err = errors.New(fmt.Sprintf("%s", ret))
		}
		HandleError(c, err)
	} else {
		if err := c.Errors.Last(); err != nil {
			HandleError(c, err)
		}
	}
}

func HandleError(c *gin.Context, err error) {
	genericErr := err
	var ginErr *gin.Error
	if errors.As(err, &ginErr) {
		genericErr = ginErr.Err
	}

	status, body := resolve(genericErr)
	logger := common.LogWithContext(c.Request.Context()).WithField("path", c.Request.URL.Path)
	if status >= http.StatusInternalServerError {
		logger.Error(genericErr)
	} else {
		logger.Info(genericErr)
	}
	c.JSON(status, body)
	c.Abort()
}

func resolve(err error) (int, *common.ErrorBody) {
	var bizErr common.BizError
	if errors.As(err, &bizErr) {
		respond := bizErr.Respond()
		return respond.Status, &common.ErrorBody{Code: respond.Code, Message: respond.Message, Data: respond.Data}
	}

	// no body
	if errors.Is(err, io.EOF) {
		return http.StatusBadRequest, &common.ErrorBody{Code: common.CodeBadParam, Message: "body not found"}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return http.StatusBadRequest, &common.ErrorBody{Code: common.CodeBadParam, Message: "invalid body format", Data: syntaxErr.Error()}
	}
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, &common.ErrorBody{Code: common.CodeBadParam, Message: "validation failed", Data: validationErr.Error()}
	}
	if errors.Is(err, state.ErrUnknownStatus) {
		return http.StatusBadRequest, &common.ErrorBody{Code: common.CodeBadParam, Message: err.Error()}
	}

	if errors.Is(err, domain.ErrUnknownTeam) {
		return http.StatusNotFound, &common.ErrorBody{Code: CodeUnknownTeam, Message: err.Error()}
	}
	if errors.Is(err, domain.ErrOrderNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, &common.ErrorBody{Code: common.CodeRecordNotFound, Message: "record not found"}
	}
	if errors.Is(err, ErrTooManyRequests) {
		return http.StatusTooManyRequests, &common.ErrorBody{Code: common.CodeTooManyRequests, Message: "too many requests"}
	}

	return http.StatusInternalServerError, &common.ErrorBody{Code: common.CodeInternalServerError, Message: err.Error()}
}
