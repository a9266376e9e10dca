package infer

import (
	"github.com/open-formulieren/jsonlogic-infer/internal/log"
)

var (
	unifyLogger = log.DefaultLogger.With("section", "infer.unify")
	mLogger     = log.DefaultLogger.With("section", "infer.m")
	wLogger     = log.DefaultLogger.With("section", "infer.w")
)
