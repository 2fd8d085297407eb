package port

import "github.com/bnema/themesync/internal/domain/entity"

// ConfigSchemaProvider enumerates the supported config keys in file order.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
