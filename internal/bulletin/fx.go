package bulletin

import (
	"github.com/ukripo/sisindex/internal/bulletin/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("bulletin",
	fx.Provide(repository.Provide),
)
