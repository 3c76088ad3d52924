package logger

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.Logger

// Init builds the global logger. Production mode emits JSON, anything else
// gets the human-readable development encoder.
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)

	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	Log = l
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
