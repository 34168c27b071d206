package api

import (
	"github.com/fsdevblog/wish-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userID, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	id, ok := userID.(int64)
	if !ok {
		return 0
	}
	return id
}

// listingIDParam id лота из пути. Некорректный id неотличим от несуществующего.
func listingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// recorder общая часть обработчиков: учет операций в метриках.
type recorder struct {
	rec OperationRecorder
}

func (r recorder) record(operation string, err error) {
	if r.rec != nil {
		r.rec.Operation(operation, outcomeOf(err))
	}
}
