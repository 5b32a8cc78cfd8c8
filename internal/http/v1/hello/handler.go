package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
	"github.com/janisto/lazydrobe/internal/service/preferences"
)

// Register wires hello routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Greet the user",
		Tags:        []string{"Hello"},
	}, getHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "create-hello",
		Method:        http.MethodPost,
		Path:          "/hello",
		Summary:       "Create a personalized greeting",
		Tags:          []string{"Hello"},
		DefaultStatus: http.StatusCreated,
	}, createHandler)
}

func getHandler(ctx context.Context, input *GetInput) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("path", "/hello"))
	return &GetOutput{Body: Data{Message: preferences.Greeting(input.Username)}}, nil
}

func createHandler(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	applog.LogInfo(ctx, "hello post", zap.String("path", "/hello"), zap.String("username", input.Body.Username))
	return &CreateOutput{Body: Data{Message: preferences.Greeting(input.Body.Username)}}, nil
}
