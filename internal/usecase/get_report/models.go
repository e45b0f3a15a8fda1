package get_report

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Request модель запроса отчета
type Request struct {
	Viewer *domain.Viewer // Кто запрашивает отчет
	Date   *time.Time     // День отчета, nil - сегодня
}

// Response отчет по выручке
type Response struct {
	Scope  string // "salon" или "own"
	Report domain.Report
}

const (
	ScopeSalon = "salon"
	ScopeOwn   = "own"
)
