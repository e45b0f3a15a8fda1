package sweep_overdue

import "time"

// Result итог одного прохода
type Result struct {
	AsOf         time.Time // День, относительно которого искали просроченные записи
	Checked      int       // Сколько просроченных записей найдено
	Transitioned int       // Сколько переведено в no-show
	Skipped      int       // Сколько уже изменено кем-то другим
	Failed       int       // Сколько не удалось обновить
}
