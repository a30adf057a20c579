package store

import (
	"context"

	"github.com/rikardjonsson/pylon/pkg/errors"
	"github.com/rikardjonsson/pylon/pkg/persist"
)

// Options selects and configures a storage backend.
type Options struct {
	// Backend is one of the persist.Backend* names. Empty means file.
	Backend string

	// Dir is the directory for the file backend. Empty uses the default
	// under the user's config directory.
	Dir string

	// RedisURL is the redis:// connection string for the redis backend.
	RedisURL string

	// MongoURI and MongoDatabase configure the mongo backend.
	MongoURI      string
	MongoDatabase string
}

// Open constructs the backend named by opts. The returned backend name is
// the normalized persist.Backend* constant for hooks and logs.
func Open(ctx context.Context, opts Options) (persist.Store, string, error) {
	switch opts.Backend {
	case persist.BackendFile, "":
		s, err := NewFileStore(opts.Dir)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeStorage, err, "failed to open file store")
		}
		return s, persist.BackendFile, nil

	case persist.BackendMemory:
		return NewMemoryStore(), persist.BackendMemory, nil

	case persist.BackendRedis:
		s, err := NewRedisStore(ctx, opts.RedisURL)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeStorage, err, "failed to open redis store")
		}
		return s, persist.BackendRedis, nil

	case persist.BackendMongo:
		s, err := NewMongoStore(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeStorage, err, "failed to open mongo store")
		}
		return s, persist.BackendMongo, nil

	case persist.BackendNull:
		return NewNullStore(), persist.BackendNull, nil

	default:
		return nil, "", errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend %q", opts.Backend)
	}
}
