package application

import (
	"github.com/ukripo/sisindex/internal/application/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("application",
	fx.Provide(repository.Provide),
)
