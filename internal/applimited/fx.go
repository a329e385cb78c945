package applimited

import (
	"github.com/ukripo/sisindex/internal/applimited/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("applimited",
	fx.Provide(repository.Provide),
)
