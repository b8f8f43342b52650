package api

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/glucoguide/readings"
	"github.com/tidepool-org/glucoguide/users"
)

//go:generate go run github.com/deepmap/oapi-codegen/v2/cmd/oapi-codegen@v2.0.0 -generate=types -package=api -o gen_types.go ../spec/glucoguide.yaml
//go:generate go run github.com/deepmap/oapi-codegen/v2/cmd/oapi-codegen@v2.0.0 -generate=server,spec -package=api -o gen_server.go ../spec/glucoguide.yaml

type Handler struct {
	users     users.Service
	simulator *readings.Simulator
	logger    *zap.SugaredLogger
}

var _ ServerInterface = &Handler{}

type Params struct {
	fx.In

	Users     users.Service
	Simulator *readings.Simulator
	Logger    *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		users:     p.Users,
		simulator: p.Simulator,
		logger:    p.Logger,
	}
}
