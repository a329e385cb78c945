package indexrun

import (
	"github.com/ukripo/sisindex/internal/indexrun/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("indexrun",
	fx.Provide(repository.Provide),
)
