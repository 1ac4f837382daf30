package garden

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "garden-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/garden",
		Summary:     "Получить снапшот коллекции",
		Description: "Возвращает коллекцию пользователя целиком вместе с серверной меткой времени",
		Tags:        []string{"garden"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) putOp() huma.Operation {
	return huma.Operation{
		OperationID: "garden-put",
		Method:      http.MethodPut,
		Path:        "/api/v1/garden",
		Summary:     "Заменить снапшот коллекции",
		Description: "Принимает коллекцию целиком и назначает ей серверную метку времени",
		Tags:        []string{"garden"},
		Middlewares: h.middleware,
	}
}
