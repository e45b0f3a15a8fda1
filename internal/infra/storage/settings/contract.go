package settings

import "github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
